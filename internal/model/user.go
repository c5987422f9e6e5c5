// internal/model/user.go
package model

// 認証・アカウント管理は外部コラボレータの責務。
// このサービスは検証済みトークンの subject をユーザーIDとして受け取るだけ。

type ContextKey string

const (
	UserIDKey ContextKey = "userID"
)
