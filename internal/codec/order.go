package codec

import "main/internal/model"

// PassToken is the no-op response when no orders are pending.
const PassToken = "pass"

const orderSep = ';'

// AppendOrders serializes pending orders as `<side> <pair> <amount>`
// joined by `;`, or the literal pass token when there are none.
func AppendOrders(dst []byte, orders []model.Order) []byte {
	if len(orders) == 0 {
		return append(dst, PassToken...)
	}

	for i, order := range orders {
		if i > 0 {
			dst = append(dst, orderSep)
		}
		dst = append(dst, order.Side.String()...)
		dst = append(dst, ' ')
		dst = append(dst, order.Pair...)
		dst = append(dst, ' ')
		dst = append(dst, order.Amount.String()...)
	}

	return dst
}
