// Package dsl 提供基于 CEL (Common Expression Language) 的候选表达式求值，
// 驱动规则过滤等策略场景。
package dsl

import (
	"fmt"
	"sync"

	"github.com/google/cel-go/cel"

	"github.com/rushteam/prodrec/core"
)

var (
	// celEnv 是全局的 CEL 环境，线程安全，可复用
	celEnv     *cel.Env
	celEnvOnce sync.Once
)

func getCELEnv() (*cel.Env, error) {
	var err error
	celEnvOnce.Do(func() {
		celEnv, err = cel.NewEnv(
			cel.Variable("item", cel.DynType),
			cel.Variable("label", cel.DynType),
			cel.Variable("rctx", cel.DynType),
		)
	})
	return celEnv, err
}

// Eval 对单个候选商品求值 CEL 表达式。
//
// 表达式可访问的变量：
//   - item.id / item.score / item.meta.xxx —— 候选与其元信息
//     （meta 字段由 feature.EnrichNode 注入：name、category、price、rating 等）
//   - label.xxx —— 标签值的顶层访问，例如 label.reason == "popular"
//   - rctx.user_id / rctx.scene / rctx.params —— 请求上下文
//
// 示例：
//   - `item.meta.price > 500.0` —— 过滤高价商品
//   - `label.reason == "popular" && item.score < 4.0` —— 过滤低分热门
//
// 注意：CEL 访问不存在的 key 会报错，用 `label.key != null` 检查存在性。
type Eval struct {
	item *core.Item
	rctx *core.RecommendContext
	env  *cel.Env
}

// NewEval 创建一个新的表达式求值器。
func NewEval(item *core.Item, rctx *core.RecommendContext) *Eval {
	env, _ := getCELEnv()
	return &Eval{
		item: item,
		rctx: rctx,
		env:  env,
	}
}

// Evaluate 编译并执行表达式，返回布尔结果。空表达式视为 true。
func (e *Eval) Evaluate(expr string) (bool, error) {
	if expr == "" {
		return true, nil
	}
	if e.env == nil {
		return false, fmt.Errorf("cel env not initialized")
	}

	ast, issues := e.env.Compile(expr)
	if issues != nil && issues.Err() != nil {
		return false, fmt.Errorf("compile error: %v", issues.Err())
	}
	prg, err := e.env.Program(ast)
	if err != nil {
		return false, fmt.Errorf("program error: %v", err)
	}

	out, _, err := prg.Eval(e.buildInput())
	if err != nil {
		return false, fmt.Errorf("eval error: %v", err)
	}
	result, ok := out.Value().(bool)
	if !ok {
		return false, fmt.Errorf("expression must return boolean, got %T", out.Value())
	}
	return result, nil
}

// buildInput 构建 CEL 表达式的输入数据。
func (e *Eval) buildInput() map[string]any {
	labels := make(map[string]any)
	if e.item != nil {
		for k, v := range e.item.Labels {
			labels[k] = v.Value
		}
	}

	item := map[string]any{}
	if e.item != nil {
		item["id"] = e.item.ID
		item["score"] = e.item.Score
		item["meta"] = e.item.Meta
	}

	rctx := map[string]any{}
	if e.rctx != nil {
		rctx["user_id"] = e.rctx.UserID
		rctx["scene"] = e.rctx.Scene
		rctx["params"] = e.rctx.Params
	}

	return map[string]any{
		"item":  item,
		"label": labels,
		"rctx":  rctx,
	}
}
