package models

// Category identifies one of the nine scoring categories tracked by
// standard 9-cat fantasy basketball leagues.
type Category string

const (
	CategoryPoints    Category = "z_points"
	CategoryRebounds  Category = "z_rebounds"
	CategoryAssists   Category = "z_assists"
	CategorySteals    Category = "z_steals"
	CategoryBlocks    Category = "z_blocks"
	CategoryTurnovers Category = "z_turnovers"
	CategoryFGPct     Category = "z_fg_pct"
	CategoryFTPct     Category = "z_ft_pct"
	CategoryThreePM   Category = "z_three_pm"
)

// CategoryInfo carries display metadata for a category.
type CategoryInfo struct {
	Name  string
	Short string
}

// Categories is the closed set of tracked categories in canonical order.
var Categories = []Category{
	CategoryPoints,
	CategoryRebounds,
	CategoryAssists,
	CategorySteals,
	CategoryBlocks,
	CategoryTurnovers,
	CategoryFGPct,
	CategoryFTPct,
	CategoryThreePM,
}

// CategoryDetails maps each category to its display metadata.
var CategoryDetails = map[Category]CategoryInfo{
	CategoryPoints:    {Name: "Points", Short: "PTS"},
	CategoryRebounds:  {Name: "Rebounds", Short: "REB"},
	CategoryAssists:   {Name: "Assists", Short: "AST"},
	CategorySteals:    {Name: "Steals", Short: "STL"},
	CategoryBlocks:    {Name: "Blocks", Short: "BLK"},
	CategoryTurnovers: {Name: "Turnovers", Short: "TO"},
	CategoryFGPct:     {Name: "Field Goal %", Short: "FG%"},
	CategoryFTPct:     {Name: "Free Throw %", Short: "FT%"},
	CategoryThreePM:   {Name: "3-Pointers Made", Short: "3PM"},
}

// PercentageCategories are the shooting-percentage categories, which get
// extra scrutiny in punt detection because a roster can sink them with
// volume shooters regardless of totals elsewhere.
var PercentageCategories = []Category{CategoryFGPct, CategoryFTPct}

// IsPercentage reports whether c is a shooting-percentage category.
func (c Category) IsPercentage() bool {
	for _, p := range PercentageCategories {
		if c == p {
			return true
		}
	}
	return false
}

// Name returns the category's full display name.
func (c Category) Name() string { return CategoryDetails[c].Name }

// Short returns the category's abbreviated display name.
func (c Category) Short() string { return CategoryDetails[c].Short }
