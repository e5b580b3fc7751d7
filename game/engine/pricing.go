package engine

// StockInfo is one row of the price table: the chain-size band it covers and
// the derived per-share price and shareholder bonuses.
type StockInfo struct {
	TileRange  [2]int
	Price      int
	MajorBonus int
	MinorBonus int
}

// Price tables per tier. Each higher tier shifts the price up by 100 and the
// bonuses follow at 10x and 5x the price.
var tierOneInfo = []StockInfo{
	{TileRange: [2]int{2, 2}, Price: 200, MajorBonus: 2000, MinorBonus: 1000},
	{TileRange: [2]int{3, 3}, Price: 300, MajorBonus: 3000, MinorBonus: 1500},
	{TileRange: [2]int{4, 4}, Price: 400, MajorBonus: 4000, MinorBonus: 2000},
	{TileRange: [2]int{5, 5}, Price: 500, MajorBonus: 5000, MinorBonus: 2500},
	{TileRange: [2]int{6, 10}, Price: 600, MajorBonus: 6000, MinorBonus: 3000},
	{TileRange: [2]int{11, 20}, Price: 700, MajorBonus: 7000, MinorBonus: 3500},
	{TileRange: [2]int{21, 30}, Price: 800, MajorBonus: 8000, MinorBonus: 4000},
	{TileRange: [2]int{31, 40}, Price: 900, MajorBonus: 9000, MinorBonus: 4500},
	{TileRange: [2]int{41, 9999}, Price: 1000, MajorBonus: 10000, MinorBonus: 5000},
}

var tierTwoInfo = []StockInfo{
	{TileRange: [2]int{2, 2}, Price: 300, MajorBonus: 3000, MinorBonus: 1500},
	{TileRange: [2]int{3, 3}, Price: 400, MajorBonus: 4000, MinorBonus: 2000},
	{TileRange: [2]int{4, 4}, Price: 500, MajorBonus: 5000, MinorBonus: 2500},
	{TileRange: [2]int{5, 5}, Price: 600, MajorBonus: 6000, MinorBonus: 3000},
	{TileRange: [2]int{6, 10}, Price: 700, MajorBonus: 7000, MinorBonus: 3500},
	{TileRange: [2]int{11, 20}, Price: 800, MajorBonus: 8000, MinorBonus: 4000},
	{TileRange: [2]int{21, 30}, Price: 900, MajorBonus: 9000, MinorBonus: 4500},
	{TileRange: [2]int{31, 40}, Price: 1000, MajorBonus: 10000, MinorBonus: 5000},
	{TileRange: [2]int{41, 9999}, Price: 1100, MajorBonus: 11000, MinorBonus: 5500},
}

var tierThreeInfo = []StockInfo{
	{TileRange: [2]int{2, 2}, Price: 400, MajorBonus: 4000, MinorBonus: 2000},
	{TileRange: [2]int{3, 3}, Price: 500, MajorBonus: 5000, MinorBonus: 2500},
	{TileRange: [2]int{4, 4}, Price: 600, MajorBonus: 6000, MinorBonus: 3000},
	{TileRange: [2]int{5, 5}, Price: 700, MajorBonus: 7000, MinorBonus: 3500},
	{TileRange: [2]int{6, 10}, Price: 800, MajorBonus: 8000, MinorBonus: 4000},
	{TileRange: [2]int{11, 20}, Price: 900, MajorBonus: 9000, MinorBonus: 4500},
	{TileRange: [2]int{21, 30}, Price: 1000, MajorBonus: 10000, MinorBonus: 5000},
	{TileRange: [2]int{31, 40}, Price: 1100, MajorBonus: 11000, MinorBonus: 5500},
	{TileRange: [2]int{41, 9999}, Price: 1200, MajorBonus: 12000, MinorBonus: 6000},
}

var tierInfo = [][]StockInfo{tierOneInfo, tierTwoInfo, tierThreeInfo}

// PriceFor looks up the price table row for a chain tier and size. Chains
// below size 2 have no market value, so the zero StockInfo is returned.
func PriceFor(tier, size int) StockInfo {
	if tier < 1 || tier > len(tierInfo) || size < 2 {
		return StockInfo{}
	}
	table := tierInfo[tier-1]
	for _, info := range table {
		if size >= info.TileRange[0] && size <= info.TileRange[1] {
			return info
		}
	}
	return table[len(table)-1]
}

// splitBonus divides a bonus among n tied shareholders, rounding each share
// up to the nearest 100.
func splitBonus(total, n int) int {
	if n <= 0 {
		return 0
	}
	unit := n * 100
	return (total + unit - 1) / unit * 100
}
