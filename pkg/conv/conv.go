// Package conv 提供类型转换工具，用于简化配置解析中的重复逻辑。
package conv

// ToFloat64 将 any 转为 float64。
// 支持 float64、float32、int、int64、int32。
func ToFloat64(v any) (float64, bool) {
	switch val := v.(type) {
	case float64:
		return val, true
	case float32:
		return float64(val), true
	case int:
		return float64(val), true
	case int64:
		return float64(val), true
	case int32:
		return float64(val), true
	default:
		return 0, false
	}
}

// ConfigGet 从配置 map 读取 key 并断言为 T；缺失或类型不符时返回默认值。
func ConfigGet[T any](config map[string]any, key string, def T) T {
	if v, ok := config[key]; ok {
		if t, ok := v.(T); ok {
			return t
		}
	}
	return def
}

// ConfigGetInt64 从配置 map 读取整数。YAML 解析出的数字可能是
// int / int64 / float64，统一归一为 int64。
func ConfigGetInt64(config map[string]any, key string, def int64) int64 {
	v, ok := config[key]
	if !ok {
		return def
	}
	if f, ok := ToFloat64(v); ok {
		return int64(f)
	}
	return def
}
