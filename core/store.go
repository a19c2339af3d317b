package core

import "context"

// EntityStore 是实体存储的领域接口：商品/用户/行为记录的只读查询。
//
// 设计原则：
//   - 定义在领域层（core），由基础设施层（store）实现
//   - 推荐引擎只依赖这组只读查询；写入（建档、记录行为）由各实现自行暴露
//   - 所有列表查询必须返回确定性顺序（按 ID 或按约定排序），
//     矩阵索引与 tie-break 的可复现性依赖这一点
//
// 实现：
//   - store.Memory（内存，测试/原型）
//   - store.SQLite（modernc.org/sqlite，单机持久化）
type EntityStore interface {
	// AllInteractions 返回全部行为记录，按行为 ID 升序。
	AllInteractions(ctx context.Context) ([]*Interaction, error)

	// InteractionsByUser 返回某用户的全部行为记录，按行为 ID 升序。
	// 用户无行为时返回空切片，不是错误。
	InteractionsByUser(ctx context.Context, userID int64) ([]*Interaction, error)

	// AllProducts 返回全部商品，按商品 ID 升序。
	AllProducts(ctx context.Context) ([]*Product, error)

	// ProductByID 返回单个商品；不存在时返回 ErrStoreNotFound。
	ProductByID(ctx context.Context, id int64) (*Product, error)

	// UserByID 返回单个用户；不存在时返回 ErrStoreNotFound。
	UserByID(ctx context.Context, id int64) (*User, error)

	// TopRatedProducts 返回评分最高的至多 n 个商品，
	// 按评分降序，评分相同按商品 ID 升序。冷启动回退依赖此查询。
	TopRatedProducts(ctx context.Context, n int) ([]*Product, error)

	// Close 关闭连接/释放资源。
	Close() error
}

// KeyValueStore 是 KV 存储的领域接口，用于预计算结果的缓存
// （例如热门商品 zset）。有序集合语义与 Redis 对齐：
// ZRange 按分数降序返回 [start, stop] 区间的成员。
type KeyValueStore interface {
	// Name 返回存储后端名称（用于日志/监控）。
	Name() string

	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) error

	// ZAdd 向有序集合添加成员。
	ZAdd(ctx context.Context, key string, score float64, member string) error

	// ZRange 按分数降序获取有序集合成员（用于 TopN 读取）。
	ZRange(ctx context.Context, key string, start, stop int64) ([]string, error)

	// ZScore 获取成员的分数；不存在时返回 ErrStoreNotFound。
	ZScore(ctx context.Context, key string, member string) (float64, error)

	Close() error
}

// Store 错误定义（使用统一的 DomainError）
var (
	// ErrStoreNotFound 表示实体或 key 不存在
	ErrStoreNotFound = NewDomainError(ModuleStore, ErrorCodeNotFound, "store: not found")

	// ErrStoreNotSupported 表示操作不支持
	ErrStoreNotSupported = NewDomainError(ModuleStore, ErrorCodeNotSupported, "store: operation not supported")
)

// IsStoreNotFound 检查错误是否为实体/key 不存在。
func IsStoreNotFound(err error) bool {
	domainErr := GetDomainError(err)
	return domainErr != nil && domainErr.Module == ModuleStore && domainErr.Code == ErrorCodeNotFound
}
