package mangle

import (
	"reflect"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"MangleFuzz/dict"
)

// scriptRand replays a fixed sequence of draws. Get and Uint64 share
// the sequence; Buf and BufPrintable fill with fixed markers so tests
// can tell random-filled regions apart from moved content.
type scriptRand struct {
	t   *testing.T
	seq []uint64
	i   int
}

func (s *scriptRand) next() uint64 {
	require.Less(s.t, s.i, len(s.seq), "random sequence exhausted")
	v := s.seq[s.i]
	s.i++
	return v
}

func (s *scriptRand) Get(lo, hi uint64) uint64 {
	v := s.next()
	require.GreaterOrEqual(s.t, v, lo, "scripted draw below range")
	require.LessOrEqual(s.t, v, hi, "scripted draw above range")
	return v
}

func (s *scriptRand) Uint64() uint64 { return s.next() }

func (s *scriptRand) Buf(dst []byte) {
	for i := range dst {
		dst[i] = 0xAA
	}
}

func (s *scriptRand) BufPrintable(dst []byte) {
	for i := range dst {
		dst[i] = 'r'
	}
}

func (s *scriptRand) Printable() byte { return 'q' }

func newTestRun(t *testing.T, seed []byte, maxSize int, seq ...uint64) *Run {
	r := NewRun(seed, maxSize)
	r.Rnd = &scriptRand{t: t, seq: seq}
	return r
}

// TestNewRun tests seed normalization
func TestNewRun(t *testing.T) {
	r := NewRun(nil, 16)
	assert.Equal(t, 1, r.Size())
	assert.Equal(t, []byte{0}, r.Input())

	r = NewRun([]byte("abcdef"), 4)
	assert.Equal(t, []byte("abcd"), r.Input())

	r = NewRun([]byte("ab"), 16)
	assert.Equal(t, []byte("ab"), r.Input())
}

// TestSetSize tests the resize bounds
func TestSetSize(t *testing.T) {
	r := NewRun([]byte("abcd"), 8)
	r.SetSize(6)
	assert.Equal(t, 6, r.Size())
	// The old content survives under a shrink-then-grow cycle.
	r.SetSize(2)
	r.SetSize(4)
	assert.Equal(t, []byte("abcd"), r.Input())

	assert.Panics(t, func() { r.SetSize(0) })
	assert.Panics(t, func() { r.SetSize(9) })
}

// TestBit tests single-bit flips
func TestBit(t *testing.T) {
	r := newTestRun(t, []byte{0x00}, 4, 0, 3)
	mangleBit(r, false)
	assert.Equal(t, []byte{0x08}, r.Input())
}

// TestBit_Printable tests that a flipped byte is projected
func TestBit_Printable(t *testing.T) {
	r := newTestRun(t, []byte{0x7A}, 4, 0, 7)
	mangleBit(r, true)
	// 0x7A ^ 0x80 = 0xFA, projected to 0xFA%95+32.
	assert.Equal(t, []byte{0xFA%95 + 32}, r.Input())
}

// TestBytes tests the random 1-8 byte overwrite and its tail clamp
func TestBytes(t *testing.T) {
	r := newTestRun(t, []byte("abcd"), 8, 2, 8)
	mangleBytes(r, false)
	assert.Equal(t, []byte{'a', 'b', 0xAA, 0xAA}, r.Input())
	assert.Equal(t, 4, r.Size())
}

// TestMagic tests a magic-constant splice
func TestMagic(t *testing.T) {
	r := newTestRun(t, []byte{0xEE, 0xEE}, 4, 0, 1)
	mangleMagic(r, false)
	assert.Equal(t, []byte{0x01, 0xEE}, r.Input())
	assert.Equal(t, 2, r.Size(), "magic overwrite must not change size")
}

// TestMagic_Printable tests projection of the spliced constant
func TestMagic_Printable(t *testing.T) {
	r := newTestRun(t, []byte{0xEE}, 4, 0, 3)
	mangleMagic(r, true)
	assert.Equal(t, []byte{3%95 + 32}, r.Input())
}

// TestMagicTable sanity-checks the built-in constants table
func TestMagicTable(t *testing.T) {
	require.Len(t, magicTable, 221)
	widths := map[int]int{}
	for i, m := range magicTable {
		assert.Len(t, m.val, 8, "entry %d", i)
		assert.Contains(t, []int{1, 2, 4, 8}, m.size, "entry %d", i)
		widths[m.size]++
	}
	assert.Equal(t, map[int]int{1: 26, 2: 65, 4: 65, 8: 65}, widths)

	assert.Equal(t, magicVal{"\x00\x00\x00\x00\x00\x00\x00\x00", 1}, magicTable[0])
	assert.Equal(t, magicVal{"\x00\xFF\x00\x00\x00\x00\x00\x00", 2}, magicTable[54])
	assert.Equal(t, magicVal{"\xFE\xFF\xFF\xFF\xFF\xFF\xFF\xFF", 8}, magicTable[220])
}

// TestIncDecNegByte tests the byte modifiers in both modes
func TestIncDecNegByte(t *testing.T) {
	r := newTestRun(t, []byte{0xFF}, 4, 0)
	mangleIncByte(r, false)
	assert.Equal(t, []byte{0x00}, r.Input())

	r = newTestRun(t, []byte{0x00}, 4, 0)
	mangleDecByte(r, false)
	assert.Equal(t, []byte{0xFF}, r.Input())

	r = newTestRun(t, []byte{0x55}, 4, 0)
	mangleNegByte(r, false)
	assert.Equal(t, []byte{0xAA}, r.Input())

	// Printable mode wraps within [0x20, 0x7E].
	r = newTestRun(t, []byte{0x7E}, 4, 0)
	mangleIncByte(r, true)
	assert.Equal(t, []byte{0x20}, r.Input())

	r = newTestRun(t, []byte{0x20}, 4, 0)
	mangleDecByte(r, true)
	assert.Equal(t, []byte{0x7E}, r.Input())

	r = newTestRun(t, []byte{0x20}, 4, 0)
	mangleNegByte(r, true)
	assert.Equal(t, []byte{0x7E}, r.Input())
}

// TestIncDecNegByte_Laws tests the algebraic round trips
func TestIncDecNegByte_Laws(t *testing.T) {
	for b := 0; b < 256; b++ {
		r := newTestRun(t, []byte{byte(b)}, 4, 0, 0)
		mangleIncByte(r, false)
		mangleDecByte(r, false)
		assert.Equal(t, byte(b), r.Input()[0], "inc/dec of %#x", b)

		r = newTestRun(t, []byte{byte(b)}, 4, 0, 0)
		mangleNegByte(r, false)
		mangleNegByte(r, false)
		assert.Equal(t, byte(b), r.Input()[0], "neg/neg of %#x", b)
	}
	for b := 0x20; b <= 0x7E; b++ {
		r := newTestRun(t, []byte{byte(b)}, 4, 0, 0)
		mangleIncByte(r, true)
		mangleDecByte(r, true)
		assert.Equal(t, byte(b), r.Input()[0], "printable inc/dec of %#x", b)

		r = newTestRun(t, []byte{byte(b)}, 4, 0, 0)
		mangleNegByte(r, true)
		mangleNegByte(r, true)
		assert.Equal(t, byte(b), r.Input()[0], "printable neg/neg of %#x", b)
	}
}

// TestAddSub_LittleEndian tests native-endian arithmetic
func TestAddSub_LittleEndian(t *testing.T) {
	// off=0, width 4, delta +1, odd rnd64 picks the native path.
	r := newTestRun(t, []byte{0x10, 0x20, 0x30, 0x40}, 8, 0, 2, 4097, 1)
	mangleAddSub(r, false)
	assert.Equal(t, []byte{0x11, 0x20, 0x30, 0x40}, r.Input())
}

// TestAddSub_ForeignEndian tests the byte-swapped arithmetic path
func TestAddSub_ForeignEndian(t *testing.T) {
	// Same draws but even rnd64: swap, add, swap back.
	r := newTestRun(t, []byte{0x10, 0x20, 0x30, 0x40}, 8, 0, 2, 4097, 0)
	mangleAddSub(r, false)
	assert.Equal(t, []byte{0x10, 0x20, 0x30, 0x41}, r.Input())
}

// TestAddSub_NarrowTail tests the width fallback near the buffer end
func TestAddSub_NarrowTail(t *testing.T) {
	// off=1 leaves one byte; width 8 falls back to 1.
	r := newTestRun(t, []byte{0x10, 0x20}, 8, 1, 3, 4097)
	mangleAddSub(r, false)
	assert.Equal(t, []byte{0x10, 0x21}, r.Input())
}

// TestAddSub_Printable tests the post-arithmetic projection
func TestAddSub_Printable(t *testing.T) {
	r := newTestRun(t, []byte{0x20, 0x21}, 8, 0, 1, 4096+0x100, 1)
	mangleAddSub(r, true)
	for _, b := range r.Input() {
		assert.GreaterOrEqual(t, b, byte(0x20))
		assert.LessOrEqual(t, b, byte(0x7E))
	}
}

// TestAddSub_UnknownWidthPanics tests the invariant-violation abort
func TestAddSub_UnknownWidthPanics(t *testing.T) {
	r := newTestRun(t, []byte{1, 2, 3, 4}, 8, 4096)
	assert.PanicsWithValue(t, "mangle: AddSub: unknown variable length size: 3", func() {
		mangleAddSubWithRange(r, 0, 3)
	})
}

// TestCloneByte tests the two-offset swap
func TestCloneByte(t *testing.T) {
	r := newTestRun(t, []byte("abcd"), 8, 1, 3)
	mangleCloneByte(r, false)
	assert.Equal(t, []byte("adcb"), r.Input())
}

// TestMemMove tests that the deliberately wide length draw is clamped
func TestMemMove(t *testing.T) {
	// len=5 is drawn from [0, size]; move clamps it to the overlap-safe
	// window min(size-from-1, size-to-1) = 1.
	r := newTestRun(t, []byte{1, 2, 3, 4, 5}, 8, 1, 3, 5)
	mangleMemMove(r, false)
	assert.Equal(t, []byte{1, 2, 3, 2, 5}, r.Input())
}

// TestMemSet tests the constant fill
func TestMemSet(t *testing.T) {
	r := newTestRun(t, []byte("abcde"), 8, 0x41, 1, 3)
	mangleMemSet(r, false)
	assert.Equal(t, []byte("aAAAe"), r.Input())
}

// TestMemSet_Printable tests that the fill byte comes from the
// printable generator
func TestMemSet_Printable(t *testing.T) {
	r := newTestRun(t, []byte("abcde"), 8, 0, 5)
	mangleMemSet(r, true)
	assert.Equal(t, []byte("qqqqq"), r.Input())
}

// TestRandom tests the random window fill
func TestRandom(t *testing.T) {
	r := newTestRun(t, []byte("abcde"), 8, 1, 2)
	mangleRandom(r, false)
	assert.Equal(t, []byte{'a', 0xAA, 0xAA, 'd', 'e'}, r.Input())

	r = newTestRun(t, []byte("abcde"), 8, 1, 2)
	mangleRandom(r, true)
	assert.Equal(t, []byte("arrde"), r.Input())
}

// TestDictionary tests the splice of a dictionary entry
func TestDictionary(t *testing.T) {
	r := newTestRun(t, []byte("xxxxx"), 8, 3, 0)
	r.Dict = dict.New([]byte("ABC"))
	mangleDictionary(r, false)
	assert.Equal(t, []byte("xxxAB"), r.Input(), "entry clamped to buffer tail")
	assert.Equal(t, 5, r.Size())
}

// TestDictionary_EmptyFallsBackToBit tests the empty-dictionary path
func TestDictionary_EmptyFallsBackToBit(t *testing.T) {
	for _, d := range []*dict.Dictionary{nil, dict.New()} {
		r := newTestRun(t, []byte{0x00}, 4, 0, 0)
		r.Dict = d
		mangleDictionary(r, false)
		assert.Equal(t, []byte{0x01}, r.Input())

		r = newTestRun(t, []byte{0x00}, 4, 0, 0)
		r.Dict = d
		mangleDictionaryInsert(r, false)
		assert.Equal(t, []byte{0x01}, r.Input())
	}
}

// TestDictionaryInsert tests the buffer-growing insert
func TestDictionaryInsert(t *testing.T) {
	r := newTestRun(t, []byte("xxxxx"), 8, 0, 2)
	r.Dict = dict.New([]byte("ABC"))
	mangleDictionaryInsert(r, false)
	assert.Equal(t, 8, r.Size())
	assert.Equal(t, []byte("xxABCxx"), r.Input()[:7])
}

// TestDictionaryInsert_AtMaxSize tests the degenerate overwrite
func TestDictionaryInsert_AtMaxSize(t *testing.T) {
	r := newTestRun(t, []byte("xy"), 2, 0, 0)
	r.Dict = dict.New([]byte("ABC"))
	mangleDictionaryInsert(r, false)
	assert.Equal(t, []byte("AB"), r.Input())
	assert.Equal(t, 2, r.Size())
}

// TestExpand tests growth and the size law
func TestExpand(t *testing.T) {
	r := newTestRun(t, []byte("abcd"), 16, 1, 3)
	mangleExpand(r, false)
	assert.Equal(t, 7, r.Size())
	assert.Equal(t, byte('a'), r.Input()[0])
	assert.Equal(t, []byte{0xAA, 0xAA, 0xAA}, r.Input()[1:4], "inflated gap is random-filled")
	assert.Equal(t, []byte("bc"), r.Input()[4:6], "shifted content")
}

// TestExpand_AtMaxSize tests that a full buffer is left untouched
func TestExpand_AtMaxSize(t *testing.T) {
	seed := []byte("abcd")
	r := newTestRun(t, seed, 4, 0, 1)
	mangleExpand(r, false)
	assert.Empty(t, cmp.Diff(seed, r.Input()))
}

// TestExpand_ClampsToMaxSize tests the growth cap
func TestExpand_ClampsToMaxSize(t *testing.T) {
	r := newTestRun(t, []byte("abcd"), 6, 0, 4)
	mangleExpand(r, false)
	assert.Equal(t, 6, r.Size(), "grows by min(len, max-size)")
}

// TestShrink tests the leftward tail shift
func TestShrink(t *testing.T) {
	r := newTestRun(t, []byte{0, 1, 2, 3, 4, 5, 6, 7, 8, 9}, 16, 3, 0)
	mangleShrink(r, false)
	assert.Equal(t, 7, r.Size())
	// The move clamp never touches the final tail byte, so the last
	// pre-shift bytes of the window survive.
	assert.Equal(t, []byte{3, 4, 5, 3, 4, 5, 6}, r.Input())
}

// TestShrink_SizeOne tests the floor
func TestShrink_SizeOne(t *testing.T) {
	r := newTestRun(t, []byte{7}, 16)
	mangleShrink(r, false)
	assert.Equal(t, []byte{7}, r.Input())
}

// TestShrink_ToSizeOne tests the minimal outcome
func TestShrink_ToSizeOne(t *testing.T) {
	r := newTestRun(t, []byte{10, 20}, 16, 1, 0)
	mangleShrink(r, false)
	assert.Equal(t, 1, r.Size())
}

// TestResize tests the driver-side whole-buffer resize
func TestResize(t *testing.T) {
	// v=0 redraws the size from [1, max].
	r := newTestRun(t, []byte("ab"), 16, 0, 5)
	mangleResize(r, false)
	assert.Equal(t, 5, r.Size())
	assert.Equal(t, []byte{'a', 'b', 0xAA, 0xAA, 0xAA}, r.Input())

	// v in [1,8] grows by v.
	r = newTestRun(t, []byte("ab"), 16, 3)
	mangleResize(r, false)
	assert.Equal(t, 5, r.Size())

	// v=8 is a legal no-op.
	r = newTestRun(t, []byte("ab"), 16, 8)
	mangleResize(r, false)
	assert.Equal(t, []byte("ab"), r.Input())

	// v in [9,16] shrinks by v-8, floored at 1.
	r = newTestRun(t, []byte("ab"), 16, 16)
	mangleResize(r, false)
	assert.Equal(t, 1, r.Size())

	// Growth clamps to MaxSize.
	r = newTestRun(t, []byte("abcd"), 6, 8)
	mangleResize(r, false)
	assert.Equal(t, 6, r.Size())

	// Printable growth fills printable.
	r = newTestRun(t, []byte("ab"), 16, 2)
	mangleResize(r, true)
	assert.Equal(t, []byte("abrr"), r.Input())
}

// TestASCIIVal tests the decimal splice
func TestASCIIVal(t *testing.T) {
	r := newTestRun(t, []byte("xxxxxxxxxx"), 16, 12345, 2)
	mangleASCIIVal(r, false)
	assert.Equal(t, []byte("xx12345xxx"), r.Input())

	// The value is signed; all-ones formats as -1.
	r = newTestRun(t, []byte("xxxx"), 16, ^uint64(0), 0)
	mangleASCIIVal(r, false)
	assert.Equal(t, []byte("-1xx"), r.Input())

	// Clamped at the tail.
	r = newTestRun(t, []byte("xxxx"), 16, 12345, 2)
	mangleASCIIVal(r, false)
	assert.Equal(t, []byte("xx12"), r.Input())
}

// TestOperatorTable pins the operator count and endpoints
func TestOperatorTable(t *testing.T) {
	require.Len(t, mangleFuncs, 16)
	assert.Equal(t,
		reflect.ValueOf(mangleFunc(mangleBit)).Pointer(),
		reflect.ValueOf(mangleFuncs[0]).Pointer())
	assert.Equal(t,
		reflect.ValueOf(mangleFunc(mangleASCIIVal)).Pointer(),
		reflect.ValueOf(mangleFuncs[15]).Pointer())
}

// TestMangleContent_ZeroMutations tests that the driver is a no-op
// when disabled
func TestMangleContent_ZeroMutations(t *testing.T) {
	seed := []byte("hello world")
	r := NewRun(seed, 64)
	r.MutationsPerRun = 0
	r.Rnd = &scriptRand{t: t} // any draw would fail the test
	MangleContent(r)
	assert.Empty(t, cmp.Diff(seed, r.Input()))
}

// TestMangleContent_Bounds tests P1 over many stacked runs
func TestMangleContent_Bounds(t *testing.T) {
	const maxSize = 256
	rnd := NewRand(1)
	r := NewRun([]byte("seed"), maxSize)
	r.Rnd = rnd
	for i := 0; i < 10000; i++ {
		MangleContent(r)
		if r.Size() < 1 || r.Size() > maxSize {
			t.Fatalf("iteration %d: size %d outside [1, %d]", i, r.Size(), maxSize)
		}
	}
}

// TestMangleContent_Printable tests P3: a printable seed stays
// printable through 10k stacked mangles
func TestMangleContent_Printable(t *testing.T) {
	const maxSize = 512
	rnd := NewRand(7)

	seed := make([]byte, 64)
	rnd.BufPrintable(seed)

	r := NewRun(seed, maxSize)
	r.OnlyPrintable = true
	r.Dict = dict.New([]byte("GET "), []byte("POST"), []byte("HTTP/1.1"))
	r.Rnd = rnd

	for i := 0; i < 10000; i++ {
		MangleContent(r)
		for off, b := range r.Input() {
			if b < 0x20 || b > 0x7E {
				t.Fatalf("iteration %d: non-printable byte %#x at offset %d", i, b, off)
			}
		}
	}
}
