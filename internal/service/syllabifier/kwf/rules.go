package kwf

// applyCoreRules segments a lowercase, diacritic-free word into syllables.
//
// The scan alternates between a consonant cluster and a nucleus. A cluster
// in front of the first nucleus is the first onset; every later cluster is
// divided between the previous syllable's coda and the next onset by
// splitCluster. Consonants after the last nucleus close the final syllable.
func applyCoreRules(word string) []string {
	rs := []rune(word)
	n := len(rs)
	if n == 0 {
		return []string{word}
	}

	var syllables [][]rune
	i := 0
	for i < n && len(syllables) < maxSyllables {
		start := i
		for i < n && !isVowel(rs[i]) {
			i++
		}
		cluster := rs[start:i]

		onset := cluster
		if len(syllables) > 0 {
			var coda []rune
			coda, onset = splitCluster(cluster)
			last := len(syllables) - 1
			syllables[last] = append(syllables[last], coda...)
		}

		// Consonants with no vowel after them.
		if i >= n {
			if len(syllables) == 0 {
				syllables = append(syllables, append([]rune(nil), onset...))
			} else {
				last := len(syllables) - 1
				syllables[last] = append(syllables[last], onset...)
			}
			break
		}

		cur := append([]rune(nil), onset...)
		size := nucleusSize(rs, i)
		cur = append(cur, rs[i:i+size]...)
		i += size

		// Word-final coda: only consonants remain.
		j := i
		for j < n && !isVowel(rs[j]) {
			j++
		}
		if j == n && i < n {
			cur = append(cur, rs[i:]...)
			i = n
		}

		syllables = append(syllables, cur)
	}

	if len(syllables) == 0 {
		return []string{word}
	}

	out := make([]string, 0, len(syllables)+1)
	for _, s := range syllables {
		out = append(out, string(s))
	}
	if i < n {
		out = append(out, string(rs[i:]))
	}
	return out
}

// splitCluster divides a word-medial consonant cluster into the coda of the
// previous syllable and the onset of the next one. The longest onset
// candidate that is a suffix of the cluster, the whole cluster included,
// becomes the onset; otherwise only the last consonant moves.
func splitCluster(cluster []rune) (coda, onset []rune) {
	n := len(cluster)
	if n <= 1 {
		return nil, cluster
	}

	for _, cand := range onsetCandidates {
		size := len([]rune(cand))
		if size <= n && string(cluster[n-size:]) == cand {
			return cluster[:n-size], cluster[n-size:]
		}
	}

	return cluster[:n-1], cluster[n-1:]
}

// nucleusSize returns how many runes starting at i form the syllable
// nucleus. rs[i] is a vowel.
func nucleusSize(rs []rune, i int) int {
	n := len(rs)

	if i+2 <= n {
		pair := string(rs[i : i+2])
		for _, d := range diphthongs {
			if pair != d {
				continue
			}
			end := i+2 == n
			if vowelPairDiphthongs[d] && !end {
				break
			}
			if end || !isVowel(rs[i+2]) {
				return 2
			}
			break
		}
	}

	// Offglide: a compatible i/u that ends the word joins the vowel.
	if i+2 == n {
		if g, ok := glideCompat[rs[i]]; ok && rs[i+1] == g {
			return 2
		}
	}

	return 1
}
