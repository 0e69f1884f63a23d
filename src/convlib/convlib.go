package convlib

import (
	"github.com/shopspring/decimal"

	"github.com/cafecoder-dev/contest-export/src/types"
)

// Normalize ... 入れ子になった配列・連想配列をたどり、decimal を float64 に置き換えた値を返す。
// 引数は書き換えない。それ以外の値はそのまま返す。
func Normalize(v interface{}) interface{} {
	switch x := v.(type) {
	case []interface{}:
		res := make([]interface{}, len(x))
		for i, e := range x {
			res[i] = Normalize(e)
		}
		return res
	case map[string]interface{}:
		res := make(map[string]interface{}, len(x))
		for k, e := range x {
			res[k] = Normalize(e)
		}
		return res
	case types.Record:
		res := make(types.Record, len(x))
		for i, f := range x {
			res[i] = types.Field{Key: f.Key, Value: Normalize(f.Value)}
		}
		return res
	case []types.Record:
		res := make([]types.Record, len(x))
		for i, r := range x {
			res[i] = Normalize(r).(types.Record)
		}
		return res
	case decimal.Decimal:
		return Float(x)
	case *decimal.Decimal:
		if x == nil {
			return nil
		}
		return Float(*x)
	case decimal.NullDecimal:
		if !x.Valid {
			return nil
		}
		return Float(x.Decimal)
	default:
		return v
	}
}

// Float ... 表現できる最も近い float64
func Float(d decimal.Decimal) float64 {
	f, _ := d.Float64()
	return f
}
