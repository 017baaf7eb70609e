package analysis

// IndexOfCoincidence is the probability that two positions drawn from
// text hold the same symbol. It is 0 for texts shorter than two symbols.
func IndexOfCoincidence(text string) float64 {
	n := len(text)
	if n <= 1 {
		return 0
	}

	var counts [256]int
	for i := 0; i < n; i++ {
		counts[text[i]]++
	}

	sum := 0
	for _, f := range counts {
		sum += f * (f - 1)
	}
	return float64(sum) / (float64(n) * float64(n-1))
}

// columns splits text into n interleaved subsequences: column j holds the
// letters at positions j, j+n, j+2n, ...
func columns(text string, n int) []string {
	cols := make([][]byte, n)
	for i := 0; i < len(text); i++ {
		cols[i%n] = append(cols[i%n], text[i])
	}

	out := make([]string, n)
	for j, c := range cols {
		out[j] = string(c)
	}
	return out
}
