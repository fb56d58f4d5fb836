package dto

type MatchItemResponse struct {
	Job             JobResponse             `json:"job"`
	Score           float64                 `json:"score"`
	Components      MatchComponentsResponse `json:"components"`
	SkillMatched    bool                    `json:"skill_matched"`
	LocationMatched bool                    `json:"location_matched"`
}

type MatchComponentsResponse struct {
	BM25       float64 `json:"bm25"`
	Semantic   float64 `json:"semantic"`
	Skill      float64 `json:"skill_bonus"`
	Location   float64 `json:"location_bonus"`
	Experience float64 `json:"experience_bonus"`
}

type MatchPageResponse struct {
	Matches  []MatchItemResponse `json:"matches"`
	Total    int                 `json:"total"`
	Fallback bool                `json:"fallback"`
}
