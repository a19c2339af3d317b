// Package store 实现 core 定义的存储接口：
// 实体存储（Memory / SQLite）与 KV 存储（MemoryKV / RedisKV）。
package store

import (
	"context"
	"sort"
	"sync"

	"github.com/rushteam/prodrec/core"
)

// Memory 是内存实现的实体存储，用于测试/开发/原型。
// 读接口满足 core.EntityStore 的确定性排序约定；
// 写接口（Add*）供建档与测试造数使用，不属于引擎依赖面。
type Memory struct {
	mu           sync.RWMutex
	products     map[int64]*core.Product
	users        map[int64]*core.User
	interactions map[int64]*core.Interaction

	nextProductID     int64
	nextUserID        int64
	nextInteractionID int64
}

func NewMemory() *Memory {
	return &Memory{
		products:     make(map[int64]*core.Product),
		users:        make(map[int64]*core.User),
		interactions: make(map[int64]*core.Interaction),
	}
}

var _ core.EntityStore = (*Memory)(nil)

// AddProduct 写入商品；ID 为 0 时自动分配。返回写入后的 ID。
func (m *Memory) AddProduct(p *core.Product) int64 {
	m.mu.Lock()
	defer m.mu.Unlock()
	if p.ID == 0 {
		m.nextProductID++
		p.ID = m.nextProductID
	} else if p.ID > m.nextProductID {
		m.nextProductID = p.ID
	}
	cp := *p
	m.products[p.ID] = &cp
	return p.ID
}

// AddUser 写入用户；ID 为 0 时自动分配。
func (m *Memory) AddUser(u *core.User) int64 {
	m.mu.Lock()
	defer m.mu.Unlock()
	if u.ID == 0 {
		m.nextUserID++
		u.ID = m.nextUserID
	} else if u.ID > m.nextUserID {
		m.nextUserID = u.ID
	}
	cp := *u
	m.users[u.ID] = &cp
	return u.ID
}

// AddInteraction 写入行为记录；ID 为 0 时自动分配。
func (m *Memory) AddInteraction(in *core.Interaction) int64 {
	m.mu.Lock()
	defer m.mu.Unlock()
	if in.ID == 0 {
		m.nextInteractionID++
		in.ID = m.nextInteractionID
	} else if in.ID > m.nextInteractionID {
		m.nextInteractionID = in.ID
	}
	cp := *in
	m.interactions[in.ID] = &cp
	return in.ID
}

// RemoveProduct 删除商品（模拟下架；历史行为记录保留）。
func (m *Memory) RemoveProduct(id int64) {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.products, id)
}

func (m *Memory) AllInteractions(_ context.Context) ([]*core.Interaction, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make([]*core.Interaction, 0, len(m.interactions))
	for _, in := range m.interactions {
		out = append(out, in)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (m *Memory) InteractionsByUser(_ context.Context, userID int64) ([]*core.Interaction, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make([]*core.Interaction, 0)
	for _, in := range m.interactions {
		if in.UserID == userID {
			out = append(out, in)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (m *Memory) AllProducts(_ context.Context) ([]*core.Product, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make([]*core.Product, 0, len(m.products))
	for _, p := range m.products {
		out = append(out, p)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (m *Memory) ProductByID(_ context.Context, id int64) (*core.Product, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	p, ok := m.products[id]
	if !ok {
		return nil, core.ErrStoreNotFound
	}
	return p, nil
}

func (m *Memory) UserByID(_ context.Context, id int64) (*core.User, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	u, ok := m.users[id]
	if !ok {
		return nil, core.ErrStoreNotFound
	}
	return u, nil
}

func (m *Memory) TopRatedProducts(_ context.Context, n int) ([]*core.Product, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make([]*core.Product, 0, len(m.products))
	for _, p := range m.products {
		out = append(out, p)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Rating != out[j].Rating {
			return out[i].Rating > out[j].Rating
		}
		return out[i].ID < out[j].ID
	})
	if n > 0 && len(out) > n {
		out = out[:n]
	}
	return out, nil
}

func (m *Memory) Close() error { return nil }
