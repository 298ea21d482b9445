package http

/**
 * @time: 2024/11/3 14:10
 * @file: http_code.go
 * @description: unified response code catalogue
 */

var (
	Failed                        = failed(500, 500, "Request failed")
	RequestParameterParsingFailed = failed(400, 5001, "Request parameter parsing failed")
	InternalError                 = failed(500, 5000, "Internal error, please contact the administrator")

	// Unauthorized 401
	Unauthorized         = failed(401, 4401, "Unauthorized")
	AuthorizationEmpty   = failed(401, 4404, "Authorization header missing")
	InvalidToken         = failed(401, 4405, "Invalid token")
	TokenBeEmpty         = failed(401, 4406, "Token cannot be empty")
	TokenExpired         = failed(401, 4407, "Token is expired")
	TokenFormatIncorrect = failed(401, 4408, "Token format is incorrect")

	// BadRequest 400
	BadRequest             = failed(400, 4000, "Bad request")
	MeetingIdIsEmpty       = failed(400, 5002, "Meeting ID required")
	ParticipantIdIsEmpty   = failed(400, 5003, "Missing participant ID")
	MeetingTitleIsEmpty    = failed(400, 5004, "Meeting title is required")
	InvalidStatusParameter = failed(400, 4502, "Invalid status parameter")
	InvalidInviteToken     = failed(400, 4409, "Invalid token")

	// NotFound 404
	NotFound            = failed(404, 4004, "Not found")
	MeetingNotFound     = failed(404, 4044, "Meeting not found")
	ParticipantNotFound = failed(404, 4046, "Participants not found")
	UserNotExist        = failed(404, 4041, "User not found")

	// MethodNotAllowed 405
	MethodNotAllowed = failed(405, 4050, "Method not allowed")

	UserAlreadyExist              = failed(400, 4042, "User already exists")
	UserIncorrectPassword         = failed(401, 4043, "User incorrect password")
	UsernameArePasswordIsRequired = failed(400, 4047, "Username and password are required")
	InValidRefreshToken           = failed(401, 4410, "Invalid refresh token")
)

var (
	Success = success(200, "Request Success")
)

func failed(status, code int, msg string) *Response {
	return &Response{
		Status: status,
		Code:   code,
		Msg:    msg,
		Detail: nil,
	}
}

func success(code int, msg string) *Response {
	return &Response{
		Status: 200,
		Code:   code,
		Msg:    msg,
		Detail: nil,
	}
}
