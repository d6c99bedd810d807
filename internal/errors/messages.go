package errors

import "strings"

// Field 是注册表单中显示提示文本的位置
type Field int

const (
	FieldNone Field = iota
	FieldEmail
	FieldPassword
	FieldPasswordCheck
	FieldNickname
	FieldProfile
)

func (f Field) String() string {
	switch f {
	case FieldEmail:
		return "email"
	case FieldPassword:
		return "password"
	case FieldPasswordCheck:
		return "password_check"
	case FieldNickname:
		return "nickname"
	case FieldProfile:
		return "profile"
	default:
		return "none"
	}
}

// 通用提示文本
const (
	MsgLoginFailed  = "로그인에 실패했습니다"
	MsgSignupFailed = "회원가입에 실패했습니다"
	MsgPostSaveFail = "게시글 저장 실패"
)

var loginMessages = map[Code]string{
	CodeEmailRequired:      "이메일을 입력해주세요",
	CodeInvalidEmailFormat: "올바른 이메일 주소 형식을 입력해주세요",
	CodePasswordRequired:   "비밀번호를 입력해주세요",
	CodeInvalidCredentials: "아이디 또는 비밀번호를 확인해주세요",
}

var signupMessages = map[Code]string{
	CodeEmailRequired:          "이메일을 입력해주세요",
	CodeInvalidEmailFormat:     "올바른 이메일 주소 형식을 입력해주세요",
	CodeInvalidEmailCharacter:  "이메일은 영문과 @, .만 사용이 가능합니다",
	CodeDuplicateEmail:         "중복된 이메일입니다",
	CodePasswordRequired:       "비밀번호를 입력해주세요",
	CodeInvalidPasswordFormat:  "비밀번호는 8자 이상, 20자 이하이며 대문자, 소문자, 특수문자를 각각 1개 포함해야 합니다",
	CodePasswordCheckRequired:  "비밀번호를 한번 더 입력해주세요",
	CodePasswordMismatch:       "비밀번호가 다릅니다",
	CodeNicknameRequired:       "닉네임을 입력해주세요",
	CodeNicknameContainsSpace:  "띄어쓰기를 없애주세요",
	CodeNicknameTooLong:        "닉네임은 최대 10자까지 작성 가능합니다",
	CodeDuplicateNickname:      "중복된 닉네임입니다",
	CodeProfileImageURLMissing: "프로필 사진을 추가해주세요",
}

var postMessages = map[Code]string{
	CodeTitleTooLong:  "제목은 최대 26자까지 작성 가능합니다",
	CodeMissingFields: "제목과 내용을 입력해주세요",
}

// signupRule 按顺序匹配，先命中者生效：
// password_check / password_mismatch 必须排在 password 之前
type signupRule struct {
	field   Field
	codes   []Code
	keyword string
}

var signupRules = []signupRule{
	{FieldEmail, []Code{CodeEmailRequired, CodeInvalidEmailFormat, CodeInvalidEmailCharacter, CodeDuplicateEmail}, "email"},
	{FieldPasswordCheck, []Code{CodePasswordCheckRequired, CodePasswordMismatch}, "password_check"},
	{FieldPassword, []Code{CodePasswordRequired, CodeInvalidPasswordFormat}, "password"},
	{FieldNickname, []Code{CodeNicknameRequired, CodeNicknameContainsSpace, CodeNicknameTooLong, CodeDuplicateNickname}, "nickname"},
	{FieldProfile, []Code{CodeProfileImageURLMissing}, "profile"},
}

// LoginMessage 返回登录失败时的提示文本
func LoginMessage(code Code) string {
	if msg, ok := loginMessages[code]; ok {
		return msg
	}
	return MsgLoginFailed
}

// SignupRoute 返回注册失败码应显示的字段和文本。
// 已知码先查枚举表；未知码按同样顺序匹配关键字并原样显示码；
// 都不匹配时返回 FieldNone，由调用方弹出通用提示
func SignupRoute(code Code) (Field, string) {
	for _, rule := range signupRules {
		for _, c := range rule.codes {
			if c == code {
				return rule.field, signupMessages[code]
			}
		}
	}
	for _, rule := range signupRules {
		if strings.Contains(string(code), rule.keyword) {
			return rule.field, string(code)
		}
	}
	if msg, ok := signupMessages[code]; ok {
		return FieldNone, msg
	}
	return FieldNone, MsgSignupFailed
}

// SignupMessage 返回注册字段码对应的文本
func SignupMessage(code Code) string {
	return signupMessages[code]
}

// PostMessage 返回保存帖子失败时的提示文本
func PostMessage(code Code) string {
	if msg, ok := postMessages[code]; ok {
		return msg
	}
	return MsgPostSaveFail
}
