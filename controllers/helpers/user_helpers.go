package helpers

import (
	"strings"

	"github.com/gookit/validate"
	"github.com/volatiletech/null"

	"fintrack/config"
	"fintrack/models"
	"fintrack/types"
)

type RegisterParams struct {
	Username string `json:"username" form:"username" validate:"required"`
	Email    string `json:"email" form:"email" validate:"required|email"`
	Password string `json:"password" form:"password" validate:"required|minLen:8"`
	UserType string `json:"user_type" form:"user_type" validate:"VaildateUserType"`
}

func (p RegisterParams) Messages() map[string]string {
	invalid_message := "account.user.invalid_{field}"

	return validate.MS{
		"required":         invalid_message,
		"email":            "account.user.invalid_email",
		"minLen":           "account.user.weak_password",
		"VaildateUserType": "account.user.invalid_user_type",
	}
}

func (p RegisterParams) VaildateUserType(UserType string) bool {
	return UserType == "" || UserType == types.UserTypePersonal || UserType == types.UserTypeCompany
}

func (p RegisterParams) CreateUser(err_src *Errors) *models.User {
	if models.UsernameTaken(p.Username) {
		err_src.Errors = append(err_src.Errors, "account.user.username_taken")
	}
	if models.EmailTaken(p.Email) {
		err_src.Errors = append(err_src.Errors, "account.user.email_taken")
	}
	if err_src.Size() > 0 {
		return nil
	}

	digest, err := models.HashPassword(p.Password)
	if err != nil {
		err_src.Errors = append(err_src.Errors, "server.internal_error")
		return nil
	}

	user_type := p.UserType
	if len(user_type) == 0 {
		user_type = types.UserTypePersonal
	}

	user := &models.User{
		Username:       strings.ToLower(p.Username),
		Email:          strings.ToLower(p.Email),
		PasswordDigest: digest,
		UserType:       user_type,
	}

	if err := config.DataBase.Create(user).Error; err != nil {
		err_src.Errors = append(err_src.Errors, "account.user.create_failed")
		return nil
	}

	return user
}

type LoginParams struct {
	// Username also accepts the email address as identifier.
	Username string `json:"username" form:"username" validate:"required"`
	Password string `json:"password" form:"password" validate:"required"`
}

func (p LoginParams) Messages() map[string]string {
	return VaildateMessage("account.session")
}

type RefreshParams struct {
	Refresh string `json:"refresh" form:"refresh" validate:"required"`
}

func (p RefreshParams) Messages() map[string]string {
	return VaildateMessage("account.session")
}

// UpdateUserParams deliberately has no balance field: the cached balance is
// derived from the ledger and anything a client sends for it is dropped.
type UpdateUserParams struct {
	Username null.String `json:"username" form:"username"`
	Email    null.String `json:"email" form:"email"`
	UserType null.String `json:"user_type" form:"user_type"`
}

// Apply validates the provided fields against the current user and returns
// the column set for a selective update.
func (p UpdateUserParams) Apply(user *models.User, err_src *Errors) map[string]interface{} {
	columns := make(map[string]interface{})

	if p.Username.Valid {
		username := strings.ToLower(p.Username.String)
		if username != user.Username && models.UsernameTaken(username) {
			err_src.Errors = append(err_src.Errors, "account.user.username_taken")
		}
		columns["username"] = username
	}

	if p.Email.Valid {
		email := strings.ToLower(p.Email.String)
		if email != user.Email && models.EmailTaken(email) {
			err_src.Errors = append(err_src.Errors, "account.user.email_taken")
		}
		columns["email"] = email
	}

	if p.UserType.Valid {
		if p.UserType.String != types.UserTypePersonal && p.UserType.String != types.UserTypeCompany {
			err_src.Errors = append(err_src.Errors, "account.user.invalid_user_type")
		}
		columns["user_type"] = p.UserType.String
	}

	return columns
}
