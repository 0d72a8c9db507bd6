package onnx

import (
	"math"
	"strings"
	"unicode"

	"golang.org/x/text/unicode/norm"
)

// PrepareText applies NFKC normalization, trims the text and drops control
// characters other than newline and tab.
func PrepareText(text string) string {
	normed := strings.TrimSpace(norm.NFKC.String(text))
	return strings.Map(func(r rune) rune {
		if r == '\n' || r == '\t' {
			return r
		}
		if unicode.IsControl(r) {
			return -1
		}
		return r
	}, normed)
}

// truncate converts the encoding to int64 and caps it at maxLen tokens.
// The final token (the separator) is kept when truncating.
func truncate(ids, mask, types []int, maxLen int) ([]int64, []int64, []int64) {
	n := len(ids)
	if n > maxLen {
		n = maxLen
	}
	outIDs := make([]int64, n)
	outMask := make([]int64, n)
	outTypes := make([]int64, n)
	for i := 0; i < n; i++ {
		outIDs[i] = int64(ids[i])
		outMask[i] = valueAt(mask, i, 1)
		outTypes[i] = valueAt(types, i, 0)
	}
	if len(ids) > maxLen && n > 0 {
		last := len(ids) - 1
		outIDs[n-1] = int64(ids[last])
		outMask[n-1] = valueAt(mask, last, 1)
		outTypes[n-1] = valueAt(types, last, 0)
	}
	return outIDs, outMask, outTypes
}

func valueAt(s []int, i int, def int64) int64 {
	if i < len(s) {
		return int64(s[i])
	}
	return def
}

// meanPool averages token vectors of a [seqLen x dim] row-major matrix,
// weighting each token by its attention mask.
func meanPool(hidden []float32, mask []int64, dim int) []float32 {
	out := make([]float32, dim)
	var count float32
	for t, m := range mask {
		if m == 0 {
			continue
		}
		row := hidden[t*dim : (t+1)*dim]
		for d, v := range row {
			out[d] += v
		}
		count++
	}
	if count == 0 {
		return out
	}
	for d := range out {
		out[d] /= count
	}
	return out
}

func l2Normalize(v []float32) {
	var sum float64
	for _, x := range v {
		sum += float64(x) * float64(x)
	}
	if sum == 0 {
		return
	}
	inv := float32(1 / math.Sqrt(sum))
	for i := range v {
		v[i] *= inv
	}
}
