package httpapi

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/dmitrijs2005/avarich/internal/common"
	"github.com/dmitrijs2005/avarich/internal/server/models"
)

const (
	msgSignupOK           = "Sign Up Successful."
	msgUserExists         = "User already exists."
	msgSignupError        = "Server Error during Sign Up."
	msgSigninOK           = "Sign In Successful."
	msgInvalidCredentials = "Invalid credentials."
	msgSigninError        = "Server Error during Sign In."
	msgAuthHeaderInvalid  = "Authorization header missing or invalid."
	msgUnauthorized       = "Unauthorized"
	msgUserNotFound       = "User not found."
	msgGetUserError       = "Server Error during Fetching User Details."
	msgUserTypeOK         = "User Type Assigned Successfully."
	msgUserTypeError      = "Server Error during User Type Assignment."
	msgPersonalInfoOK     = "Personal Information updated successfully."
	msgPersonalInfoError  = "Server Error during Personal Information Update."
	msgIncomeOK           = "Income Information updated successfully."
	msgIncomeError        = "Server Error during Income Information Update."
	msgInvalidBody        = "Invalid request body."
	msgCredentialsMissing = "Email and password are required."
)

type credentialsRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type userTypeRequest struct {
	UserType models.UserType `json:"userType"`
}

func message(c *fiber.Ctx, status int, msg string) error {
	return c.Status(status).JSON(fiber.Map{"message": msg})
}

func (s *HTTPServer) signup(c *fiber.Ctx) error {
	var req credentialsRequest
	if err := c.BodyParser(&req); err != nil {
		return message(c, fiber.StatusBadRequest, msgInvalidBody)
	}

	ctx := c.UserContext()
	res, err := s.users.Signup(ctx, req.Email, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, common.ErrorAlreadyExists):
			return message(c, fiber.StatusBadRequest, msgUserExists)
		case errors.Is(err, common.ErrorValidation):
			return message(c, fiber.StatusBadRequest, msgCredentialsMissing)
		}
		s.logger.Error(ctx, "Sign Up Error", "error", err)
		return message(c, fiber.StatusInternalServerError, msgSignupError)
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message": msgSignupOK,
		"email":   res.Email,
		"token":   res.Token,
	})
}

func (s *HTTPServer) signin(c *fiber.Ctx) error {
	var req credentialsRequest
	if err := c.BodyParser(&req); err != nil {
		return message(c, fiber.StatusBadRequest, msgInvalidBody)
	}

	ctx := c.UserContext()
	res, err := s.users.Signin(ctx, req.Email, req.Password)
	if err != nil {
		if errors.Is(err, common.ErrorInvalidCredentials) {
			return message(c, fiber.StatusUnauthorized, msgInvalidCredentials)
		}
		s.logger.Error(ctx, "Sign In Error", "error", err)
		return message(c, fiber.StatusInternalServerError, msgSigninError)
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"message":  msgSigninOK,
		"email":    res.Email,
		"token":    res.Token,
		"userType": res.UserType,
	})
}

func (s *HTTPServer) getUser(c *fiber.Ctx) error {
	ctx := c.UserContext()
	user, err := s.users.GetUser(ctx, userID(c))
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return message(c, fiber.StatusNotFound, msgUserNotFound)
		}
		s.logger.Error(ctx, "Fetch User Details Error", "error", err)
		return message(c, fiber.StatusInternalServerError, msgGetUserError)
	}
	return c.Status(fiber.StatusOK).JSON(user)
}

func (s *HTTPServer) setUserType(c *fiber.Ctx) error {
	var req userTypeRequest
	if err := c.BodyParser(&req); err != nil {
		return message(c, fiber.StatusBadRequest, msgInvalidBody)
	}

	ctx := c.UserContext()
	userType, err := s.users.SetUserType(ctx, userID(c), req.UserType)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return message(c, fiber.StatusNotFound, msgUserNotFound)
		}
		s.logger.Error(ctx, "Assign User Type Error", "error", err)
		return message(c, fiber.StatusInternalServerError, msgUserTypeError)
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"message":  msgUserTypeOK,
		"userType": userType,
	})
}

func (s *HTTPServer) setPersonalInformation(c *fiber.Ctx) error {
	var info models.PersonalInformation
	if err := c.BodyParser(&info); err != nil {
		return message(c, fiber.StatusBadRequest, msgInvalidBody)
	}

	ctx := c.UserContext()
	if err := s.users.SetPersonalInformation(ctx, userID(c), &info); err != nil {
		s.logger.Error(ctx, "Personal Information Update Error", "error", err)
		return message(c, fiber.StatusInternalServerError, msgPersonalInfoError)
	}
	return message(c, fiber.StatusOK, msgPersonalInfoOK)
}

func (s *HTTPServer) setIncome(c *fiber.Ctx) error {
	var income models.Income
	if err := c.BodyParser(&income); err != nil {
		return message(c, fiber.StatusBadRequest, msgInvalidBody)
	}

	ctx := c.UserContext()
	if err := s.users.SetIncome(ctx, userID(c), &income); err != nil {
		s.logger.Error(ctx, "Income Information Update Error", "error", err)
		return message(c, fiber.StatusInternalServerError, msgIncomeError)
	}
	return message(c, fiber.StatusOK, msgIncomeOK)
}
