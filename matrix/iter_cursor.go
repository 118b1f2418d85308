// SPDX-License-Identifier: MIT

package matrix

// cursor is the index-based core shared by all iterator families.
//
// A cursor addresses data[cur+lane]. Moving one logical step adds stride to
// cur, so:
//   - contiguous (linear/row) cursors use lane=0, stride=1;
//   - column cursors keep cur on a row start, lane=column, stride=cols.
//
// Two cursors are equal iff both cur and lane match; a column cursor and a
// linear cursor over the same address are therefore never conflated.
// Distance is only meaningful between cursors of the same stride.
type cursor[T Element] struct {
	data   []T
	cur    int // anchor offset (element for contiguous, row start for columns)
	lane   int // offset added on dereference
	stride int // buffer distance between logical neighbours
}

// offset returns the buffer index currently addressed.
func (c cursor[T]) offset() int { return c.cur + c.lane }

func (c cursor[T]) get() T { return c.data[c.cur+c.lane] }

func (c cursor[T]) getAt(k int) T { return c.data[c.cur+k*c.stride+c.lane] }

func (c cursor[T]) put(v T) { c.data[c.cur+c.lane] = v }

func (c cursor[T]) ref() *T { return &c.data[c.cur+c.lane] }

// moved returns a copy advanced by k logical steps.
func (c cursor[T]) moved(k int) cursor[T] {
	c.cur += k * c.stride
	return c
}

// steps divides the raw anchor difference by the stride of o.
func (c cursor[T]) steps(o cursor[T]) int { return (c.cur - o.cur) / o.stride }

func (c cursor[T]) same(o cursor[T]) bool { return c.cur == o.cur && c.lane == o.lane }

func (c cursor[T]) before(o cursor[T]) bool { return c.cur < o.cur }
