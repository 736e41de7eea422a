package models

// 以下结构体仅用于 swagger 文档描述上游返回的形状，代码中不做解析

// ContestBadge 竞赛徽章
type ContestBadge struct {
	Name      string `json:"name" example:"Knight"`
	Expired   bool   `json:"expired" example:"false"`
	HoverText string `json:"hoverText" example:"Knight"`
	Icon      string `json:"icon"`
}

// MatchedUserProfile GET /leetcode/profile 的返回
type MatchedUserProfile struct {
	Username     string         `json:"username" example:"alice"`
	GithubURL    string         `json:"githubUrl"`
	TwitterURL   string         `json:"twitterUrl"`
	LinkedinURL  string         `json:"linkedinUrl"`
	ContestBadge *ContestBadge  `json:"contestBadge"`
	Profile      map[string]any `json:"profile"`
}

// DifficultyCount 按难度统计的题目数
type DifficultyCount struct {
	Difficulty string `json:"difficulty" example:"Easy"`
	Count      int    `json:"count" example:"120"`
}

// StatsResponse GET /leetcode/stats 的返回
type StatsResponse struct {
	AllQuestionsCount []DifficultyCount `json:"allQuestionsCount"`
	MatchedUser       map[string]any    `json:"matchedUser"`
}

// SkillsResponse GET /leetcode/skills 的返回
type SkillsResponse struct {
	MatchedUser struct {
		TagProblemCounts map[string]any `json:"tagProblemCounts"`
	} `json:"matchedUser"`
}

// RecentSubmission GET /leetcode/problems 数组中的一项
type RecentSubmission struct {
	ID        string `json:"id" example:"1234567"`
	Title     string `json:"title" example:"Two Sum"`
	TitleSlug string `json:"titleSlug" example:"two-sum"`
	Timestamp string `json:"timestamp" example:"1700000000"`
}
