package constants

// トークン種別
const (
	TokenTypeAccess  = "access"
	TokenTypeRefresh = "refresh"
)

// コンテキストキー
const (
	ContextKeyClaims = "claims"
)

// エラーメッセージ
const (
	ErrUnexpected       = "Something went wrong"
	ErrInvalidID        = "Invalid id"
	ErrInvalidInput     = "Invalid input"
	ErrVideoNotFound    = "Could not find video with that id"
	ErrVideoExists      = "Video id already exists"
	ErrVideoNotUpdated  = "Video doesn't exist, cannot update"
	ErrVideoNotDeleted  = "Video doesn't exist"
	ErrWrongCredentials = "Wrong credentials"
	ErrMissingAuth      = "Missing Authorization Header"
	ErrInvalidAuth      = "Invalid authorization header format"
	ErrTokenRevoked     = "Token has been revoked"
	ErrTokenInvalid     = "Invalid or expired token"
	ErrAccessRequired   = "Only non-refresh tokens are allowed"
	ErrRefreshRequired  = "Only refresh tokens are allowed"
)

// 成功メッセージ
const (
	MsgAccessRevoked  = "Access token has been revoked"
	MsgRefreshRevoked = "Refresh token has been revoked"
)

// 入力項目ごとのヘルプ
const (
	HelpBlankField = "This field cannot be blank"
	HelpVideoName  = "Name of the video is required"
	HelpVideoViews = "Views of the video"
	HelpVideoLikes = "Likes on the video"
)
