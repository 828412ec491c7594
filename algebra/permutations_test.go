package algebra

import "testing"

func factorial(n int) int {
	res := 1
	for i := 2; i <= n; i++ {
		res *= i
	}
	return res
}

func TestForPermutationsCounts(t *testing.T) {
	for n := 0; n <= 5; n++ {
		seen := make(map[string]struct{})
		even := 0
		ForPermutations(n, func(p Permutation) {
			if len(p.Map) != n {
				t.Fatalf("n=%d: permutation of length %d", n, len(p.Map))
			}
			key := ""
			used := make([]bool, n)
			for _, v := range p.Map {
				if v < 0 || v >= n || used[v] {
					t.Fatalf("n=%d: invalid permutation %v", n, p.Map)
				}
				used[v] = true
				key += string(rune('a' + v))
			}
			seen[key] = struct{}{}
			if p.IsEven {
				even++
			}
		})
		if len(seen) != factorial(n) {
			t.Fatalf("n=%d: %d distinct permutations, want %d", n, len(seen), factorial(n))
		}
		if n >= 2 && even != factorial(n)/2 {
			t.Fatalf("n=%d: %d even permutations, want %d", n, even, factorial(n)/2)
		}
	}
}

func TestForPermutationsParity(t *testing.T) {
	// Parity must match the inversion count.
	ForPermutations(4, func(p Permutation) {
		inversions := 0
		for i := 0; i < 4; i++ {
			for j := i + 1; j < 4; j++ {
				if p.Map[i] > p.Map[j] {
					inversions++
				}
			}
		}
		if p.IsEven != (inversions%2 == 0) {
			t.Fatalf("permutation %v: IsEven=%v but %d inversions",
				p.Map, p.IsEven, inversions)
		}
	})
}
