package pacman

// Level is a hand-built campaign maze. Layout characters follow the maze
// package: '#' wall, '.' pellet, 'o' power pellet, 'C' player spawn,
// 'G' ghost spawn, ' ' open floor without a pellet.
type Level struct {
	Name   string
	Layout []string
}

var campaignLevels = []Level{
	{
		Name: "Warren",
		Layout: []string{
			"############",
			"#G....G...o#",
			"#.####..#..#",
			"#.#..#.##..#",
			"#.#..#.##..#",
			"#.#..#..#..#",
			"#C........o#",
			"############",
		},
	},
	{
		Name: "Pillars",
		Layout: []string{
			"#################",
			"#o.............o#",
			"#.##.##.#.##.##.#",
			"#C......#......G#",
			"#.##.#.....#.##.#",
			"#.......G.......#",
			"#.##.##.#.##.##.#",
			"#o.............o#",
			"#################",
		},
	},
	{
		Name: "Crossroads",
		Layout: []string{
			"###################",
			"#o.......#.......o#",
			"#.###.##.#.##.###.#",
			"#.................#",
			"#.###.#.###.#.###.#",
			"....#.#..G..#.#....",
			"#.###.#.###.#.###.#",
			"#.................#",
			"#.###.##.#.##.###.#",
			"#o...G...C...G...o#",
			"###################",
		},
	},
	{
		Name: "The Vault",
		Layout: []string{
			"###################",
			"#o..#.........#..o#",
			"#.#.#.###.###.#.#.#",
			"#.#.....#.#.....#.#",
			"#.###.#.#.#.#.###.#",
			"#.....#..G..#.....#",
			"#.###.#.#.#.#.###.#",
			"#.#.....#.#.....#.#",
			"#.#.#.###.###.#.#.#",
			"#o..#..G.C.G..#..o#",
			"###################",
		},
	},
}

// LevelCount is the number of campaign levels.
func LevelCount() int {
	return len(campaignLevels)
}

// GetLevel returns the campaign level at index, clamped to the valid range.
func GetLevel(index int) Level {
	if index < 0 {
		index = 0
	}
	if index >= len(campaignLevels) {
		index = len(campaignLevels) - 1
	}
	return campaignLevels[index]
}

// LevelNames lists campaign level names in order.
func LevelNames() []string {
	names := make([]string, len(campaignLevels))
	for i, lvl := range campaignLevels {
		names[i] = lvl.Name
	}
	return names
}
