package stockpile

// Zip2 combines two sources into one whose items pair both members at the
// same slot index. The combined length is the shortest member's; because
// every registered column is kept slot-aligned with the arena, zipped views
// always agree positionally. Zip3 through Zip8 follow the same pattern.
func Zip2[T1, T2 any](s1 Source[T1], s2 Source[T2]) Source[Zipped2[T1, T2]] {
	return zip2[T1, T2]{s1, s2}
}

// Zipped2 is the item yielded by a Zip2 source.
type Zipped2[T1, T2 any] struct {
	V1 T1
	V2 T2
}

type zip2[T1, T2 any] struct {
	s1 Source[T1]
	s2 Source[T2]
}

func (z zip2[T1, T2]) Get(i int) Zipped2[T1, T2] {
	return Zipped2[T1, T2]{z.s1.Get(i), z.s2.Get(i)}
}

func (z zip2[T1, T2]) Len() int {
	return minLen(z.s1.Len(), z.s2.Len())
}

// Zip3 is the 3-ary Zip2.
func Zip3[T1, T2, T3 any](s1 Source[T1], s2 Source[T2], s3 Source[T3]) Source[Zipped3[T1, T2, T3]] {
	return zip3[T1, T2, T3]{s1, s2, s3}
}

// Zipped3 is the item yielded by a Zip3 source.
type Zipped3[T1, T2, T3 any] struct {
	V1 T1
	V2 T2
	V3 T3
}

type zip3[T1, T2, T3 any] struct {
	s1 Source[T1]
	s2 Source[T2]
	s3 Source[T3]
}

func (z zip3[T1, T2, T3]) Get(i int) Zipped3[T1, T2, T3] {
	return Zipped3[T1, T2, T3]{z.s1.Get(i), z.s2.Get(i), z.s3.Get(i)}
}

func (z zip3[T1, T2, T3]) Len() int {
	return minLen(z.s1.Len(), z.s2.Len(), z.s3.Len())
}

// Zip4 is the 4-ary Zip2.
func Zip4[T1, T2, T3, T4 any](s1 Source[T1], s2 Source[T2], s3 Source[T3], s4 Source[T4]) Source[Zipped4[T1, T2, T3, T4]] {
	return zip4[T1, T2, T3, T4]{s1, s2, s3, s4}
}

// Zipped4 is the item yielded by a Zip4 source.
type Zipped4[T1, T2, T3, T4 any] struct {
	V1 T1
	V2 T2
	V3 T3
	V4 T4
}

type zip4[T1, T2, T3, T4 any] struct {
	s1 Source[T1]
	s2 Source[T2]
	s3 Source[T3]
	s4 Source[T4]
}

func (z zip4[T1, T2, T3, T4]) Get(i int) Zipped4[T1, T2, T3, T4] {
	return Zipped4[T1, T2, T3, T4]{z.s1.Get(i), z.s2.Get(i), z.s3.Get(i), z.s4.Get(i)}
}

func (z zip4[T1, T2, T3, T4]) Len() int {
	return minLen(z.s1.Len(), z.s2.Len(), z.s3.Len(), z.s4.Len())
}

// Zip5 is the 5-ary Zip2.
func Zip5[T1, T2, T3, T4, T5 any](s1 Source[T1], s2 Source[T2], s3 Source[T3], s4 Source[T4], s5 Source[T5]) Source[Zipped5[T1, T2, T3, T4, T5]] {
	return zip5[T1, T2, T3, T4, T5]{s1, s2, s3, s4, s5}
}

// Zipped5 is the item yielded by a Zip5 source.
type Zipped5[T1, T2, T3, T4, T5 any] struct {
	V1 T1
	V2 T2
	V3 T3
	V4 T4
	V5 T5
}

type zip5[T1, T2, T3, T4, T5 any] struct {
	s1 Source[T1]
	s2 Source[T2]
	s3 Source[T3]
	s4 Source[T4]
	s5 Source[T5]
}

func (z zip5[T1, T2, T3, T4, T5]) Get(i int) Zipped5[T1, T2, T3, T4, T5] {
	return Zipped5[T1, T2, T3, T4, T5]{z.s1.Get(i), z.s2.Get(i), z.s3.Get(i), z.s4.Get(i), z.s5.Get(i)}
}

func (z zip5[T1, T2, T3, T4, T5]) Len() int {
	return minLen(z.s1.Len(), z.s2.Len(), z.s3.Len(), z.s4.Len(), z.s5.Len())
}

// Zip6 is the 6-ary Zip2.
func Zip6[T1, T2, T3, T4, T5, T6 any](s1 Source[T1], s2 Source[T2], s3 Source[T3], s4 Source[T4], s5 Source[T5], s6 Source[T6]) Source[Zipped6[T1, T2, T3, T4, T5, T6]] {
	return zip6[T1, T2, T3, T4, T5, T6]{s1, s2, s3, s4, s5, s6}
}

// Zipped6 is the item yielded by a Zip6 source.
type Zipped6[T1, T2, T3, T4, T5, T6 any] struct {
	V1 T1
	V2 T2
	V3 T3
	V4 T4
	V5 T5
	V6 T6
}

type zip6[T1, T2, T3, T4, T5, T6 any] struct {
	s1 Source[T1]
	s2 Source[T2]
	s3 Source[T3]
	s4 Source[T4]
	s5 Source[T5]
	s6 Source[T6]
}

func (z zip6[T1, T2, T3, T4, T5, T6]) Get(i int) Zipped6[T1, T2, T3, T4, T5, T6] {
	return Zipped6[T1, T2, T3, T4, T5, T6]{z.s1.Get(i), z.s2.Get(i), z.s3.Get(i), z.s4.Get(i), z.s5.Get(i), z.s6.Get(i)}
}

func (z zip6[T1, T2, T3, T4, T5, T6]) Len() int {
	return minLen(z.s1.Len(), z.s2.Len(), z.s3.Len(), z.s4.Len(), z.s5.Len(), z.s6.Len())
}

// Zip7 is the 7-ary Zip2.
func Zip7[T1, T2, T3, T4, T5, T6, T7 any](s1 Source[T1], s2 Source[T2], s3 Source[T3], s4 Source[T4], s5 Source[T5], s6 Source[T6], s7 Source[T7]) Source[Zipped7[T1, T2, T3, T4, T5, T6, T7]] {
	return zip7[T1, T2, T3, T4, T5, T6, T7]{s1, s2, s3, s4, s5, s6, s7}
}

// Zipped7 is the item yielded by a Zip7 source.
type Zipped7[T1, T2, T3, T4, T5, T6, T7 any] struct {
	V1 T1
	V2 T2
	V3 T3
	V4 T4
	V5 T5
	V6 T6
	V7 T7
}

type zip7[T1, T2, T3, T4, T5, T6, T7 any] struct {
	s1 Source[T1]
	s2 Source[T2]
	s3 Source[T3]
	s4 Source[T4]
	s5 Source[T5]
	s6 Source[T6]
	s7 Source[T7]
}

func (z zip7[T1, T2, T3, T4, T5, T6, T7]) Get(i int) Zipped7[T1, T2, T3, T4, T5, T6, T7] {
	return Zipped7[T1, T2, T3, T4, T5, T6, T7]{z.s1.Get(i), z.s2.Get(i), z.s3.Get(i), z.s4.Get(i), z.s5.Get(i), z.s6.Get(i), z.s7.Get(i)}
}

func (z zip7[T1, T2, T3, T4, T5, T6, T7]) Len() int {
	return minLen(z.s1.Len(), z.s2.Len(), z.s3.Len(), z.s4.Len(), z.s5.Len(), z.s6.Len(), z.s7.Len())
}

// Zip8 is the 8-ary Zip2.
func Zip8[T1, T2, T3, T4, T5, T6, T7, T8 any](s1 Source[T1], s2 Source[T2], s3 Source[T3], s4 Source[T4], s5 Source[T5], s6 Source[T6], s7 Source[T7], s8 Source[T8]) Source[Zipped8[T1, T2, T3, T4, T5, T6, T7, T8]] {
	return zip8[T1, T2, T3, T4, T5, T6, T7, T8]{s1, s2, s3, s4, s5, s6, s7, s8}
}

// Zipped8 is the item yielded by a Zip8 source.
type Zipped8[T1, T2, T3, T4, T5, T6, T7, T8 any] struct {
	V1 T1
	V2 T2
	V3 T3
	V4 T4
	V5 T5
	V6 T6
	V7 T7
	V8 T8
}

type zip8[T1, T2, T3, T4, T5, T6, T7, T8 any] struct {
	s1 Source[T1]
	s2 Source[T2]
	s3 Source[T3]
	s4 Source[T4]
	s5 Source[T5]
	s6 Source[T6]
	s7 Source[T7]
	s8 Source[T8]
}

func (z zip8[T1, T2, T3, T4, T5, T6, T7, T8]) Get(i int) Zipped8[T1, T2, T3, T4, T5, T6, T7, T8] {
	return Zipped8[T1, T2, T3, T4, T5, T6, T7, T8]{z.s1.Get(i), z.s2.Get(i), z.s3.Get(i), z.s4.Get(i), z.s5.Get(i), z.s6.Get(i), z.s7.Get(i), z.s8.Get(i)}
}

func (z zip8[T1, T2, T3, T4, T5, T6, T7, T8]) Len() int {
	return minLen(z.s1.Len(), z.s2.Len(), z.s3.Len(), z.s4.Len(), z.s5.Len(), z.s6.Len(), z.s7.Len(), z.s8.Len())
}

func minLen(first int, rest ...int) int {
	n := first
	for _, l := range rest {
		n = min(n, l)
	}
	return n
}
