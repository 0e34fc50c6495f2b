package mahjong

// Decomposition 一种拆分：刻子（代表牌）、顺子（三张升序）、雀头
// OK 为 false 表示拆不开，这是正常结果而非错误
type Decomposition struct {
	Triplets  []Tile
	Sequences [][3]Tile
	Pair      Tile
	OK        bool
}

// SeparateSets 按下标升序尝试每个雀头，返回第一个能拆完的结果
// tripletFirst 决定同一点数上先取刻子还是先取顺子，两种顺序都会回溯，只影响首选结果
func SeparateSets(hand Hand, exposed int, tripletFirst bool) Decomposition {
	need := 4 - exposed
	if need < 0 || hand.Total() != need*3+2 {
		return Decomposition{}
	}
	for _, p := range AllTiles {
		if hand[p] < 2 {
			continue
		}
		work := hand
		work[p] -= 2
		var d Decomposition
		if extractSets(&work, tripletFirst, &d) {
			d.Pair = p
			d.OK = true
			return d
		}
	}
	return Decomposition{}
}

// CheckRemainsAreSets 去掉雀头后的剩余部分能否恰好组成 4-exposed 个面子
func CheckRemainsAreSets(remain Hand, exposed int) bool {
	need := 4 - exposed
	if need < 0 || remain.Total() != need*3 {
		return false
	}
	work := remain
	return extractSets(&work, true, nil)
}

// IsStandardWin 一般形（雀头+面子）是否和牌
func IsStandardWin(hand Hand, exposed int) bool {
	need := 4 - exposed
	if need < 0 || hand.Total() != need*3+2 {
		return false
	}
	for _, p := range AllTiles {
		if hand[p] < 2 {
			continue
		}
		if CheckRemainsAreSets(hand.Without(p).Without(p), exposed) {
			return true
		}
	}
	return false
}

// Decompositions 枚举所有不同的一般形拆分（每个雀头 × 两种取法，去重）
func Decompositions(hand Hand, exposed int) []Decomposition {
	need := 4 - exposed
	if need < 0 || hand.Total() != need*3+2 {
		return nil
	}
	var out []Decomposition
	seen := make(map[string]struct{})
	for _, p := range AllTiles {
		if hand[p] < 2 {
			continue
		}
		for _, tripletFirst := range []bool{true, false} {
			work := hand
			work[p] -= 2
			var d Decomposition
			if !extractSets(&work, tripletFirst, &d) {
				continue
			}
			d.Pair = p
			d.OK = true
			k := d.key()
			if _, dup := seen[k]; dup {
				continue
			}
			seen[k] = struct{}{}
			out = append(out, d)
		}
	}
	return out
}

func (d Decomposition) key() string {
	b := make([]byte, 0, 16)
	b = append(b, byte(d.Pair), 't')
	for _, t := range d.Triplets {
		b = append(b, byte(t))
	}
	b = append(b, 's')
	for _, s := range d.Sequences {
		b = append(b, byte(s[0]))
	}
	return string(b)
}

// extractSets 按下标升序取面子。字牌只能成刻；数牌在当前点数上要么先取一刻，
// 其余张数全部作为以该点数起头的顺子一次取走（同样顺子并列的数量），失败则换另一种取法回溯
func extractSets(h *Hand, tripletFirst bool, out *Decomposition) bool {
	i := firstNonZero(h)
	if i < 0 {
		return true
	}
	t := Tile(i)
	c := int((*h)[i])

	if t.IsHonor() {
		if c != 3 {
			return false
		}
		(*h)[i] = 0
		ok := extractSets(h, tripletFirst, out)
		(*h)[i] = 3
		if ok && out != nil {
			out.Triplets = append([]Tile{t}, out.Triplets...)
		}
		return ok
	}

	order := [2]bool{true, false}
	if !tripletFirst {
		order = [2]bool{false, true}
	}
	for _, takeTriplet := range order {
		if takeTriplet && c < 3 {
			continue
		}
		runs := c
		if takeTriplet {
			runs = c - 3
		}
		if runs > 0 && !canTakeRuns(h, t, runs) {
			continue
		}
		applyRuns(h, t, runs, -1)
		if takeTriplet {
			(*h)[i] -= 3
		}
		var sub Decomposition
		var subOut *Decomposition
		if out != nil {
			subOut = &sub
		}
		ok := extractSets(h, tripletFirst, subOut)
		if takeTriplet {
			(*h)[i] += 3
		}
		applyRuns(h, t, runs, 1)
		if !ok {
			continue
		}
		if out != nil {
			if takeTriplet {
				out.Triplets = append(out.Triplets, t)
			}
			for k := 0; k < runs; k++ {
				out.Sequences = append(out.Sequences, [3]Tile{t, t + 1, t + 2})
			}
			out.Triplets = append(out.Triplets, sub.Triplets...)
			out.Sequences = append(out.Sequences, sub.Sequences...)
		}
		return true
	}
	return false
}

func canTakeRuns(h *Hand, t Tile, runs int) bool {
	t2, ok2 := t.shift(1)
	t3, ok3 := t.shift(2)
	return ok2 && ok3 && int((*h)[t2]) >= runs && int((*h)[t3]) >= runs
}

// applyRuns 对 t 起头的顺子批量加减，sign 为 -1 取走、+1 放回
func applyRuns(h *Hand, t Tile, runs int, sign int) {
	if runs == 0 {
		return
	}
	d := uint8(runs)
	for k := Tile(0); k < 3; k++ {
		if sign < 0 {
			(*h)[t+k] -= d
		} else {
			(*h)[t+k] += d
		}
	}
}

func firstNonZero(h *Hand) int {
	for i := 0; i < TileIndexLimit; i++ {
		if (*h)[i] > 0 {
			return i
		}
	}
	return -1
}
