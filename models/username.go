package models

// UsernameRecord 注册表中的一行
type UsernameRecord struct {
	ID       int64  `db:"id" json:"id" example:"1"`
	Username string `db:"username" json:"username" example:"alice"`
}

// AddUserRequest POST /add-user 请求体
type AddUserRequest struct {
	Username string `json:"username" example:"alice"`
}
