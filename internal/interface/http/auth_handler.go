package handlers

import (
	"mime/multipart"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/motorentals/moto-rentals-api/internal/application"
	"github.com/motorentals/moto-rentals-api/pkg/response"
	"github.com/motorentals/moto-rentals-api/pkg/validation"
)

type AuthHandler struct {
	Svc    *application.AuthService
	Logger *logrus.Logger
}

func NewAuthHandler(svc *application.AuthService, logger *logrus.Logger) *AuthHandler {
	return &AuthHandler{Svc: svc, Logger: logger}
}

type signupRequest struct {
	FirstName      string `form:"firstName" binding:"required"`
	LastName       string `form:"lastName" binding:"required"`
	Email          string `form:"email" binding:"required,email"`
	Password       string `form:"password" binding:"required,pwd"`
	RepeatPassword string `form:"repeatPassword" binding:"required,eqfield=Password"`
	PhoneNumber    string `form:"phoneNumber" binding:"required"`
	DOB            string `form:"dob" binding:"required,datetime=2006-01-02"`
	IsForeigner    bool   `form:"isForeigner"`
}

type loginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// documentUpload opens an optional multipart file for the service.
func documentUpload(fh *multipart.FileHeader) (*application.DocumentUpload, func(), error) {
	if fh == nil {
		return nil, func() {}, nil
	}
	f, err := fh.Open()
	if err != nil {
		return nil, func() {}, err
	}
	doc := &application.DocumentUpload{
		Reader:      f,
		Filename:    fh.Filename,
		ContentType: fh.Header.Get("Content-Type"),
	}
	return doc, func() { _ = f.Close() }, nil
}

// Signup POST /api/auth/signup
func (h *AuthHandler) Signup(c *gin.Context) {
	var req signupRequest
	if err := c.ShouldBind(&req); err != nil {
		response.Error[any](c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err))
		return
	}
	dob, err := time.Parse("2006-01-02", req.DOB)
	if err != nil {
		response.Error[any](c, http.StatusBadRequest, "invalid payload", map[string]string{"dob": "must match datetime format: 2006-01-02"})
		return
	}

	licenseFH, _ := c.FormFile("drivingLicense")
	passportFH, _ := c.FormFile("passport")

	license, closeLicense, err := documentUpload(licenseFH)
	if err != nil {
		serviceError(c, err)
		return
	}
	defer closeLicense()
	passport, closePassport, err := documentUpload(passportFH)
	if err != nil {
		serviceError(c, err)
		return
	}
	defer closePassport()

	u, err := h.Svc.Signup(c.Request.Context(), application.SignupInput{
		FirstName:      req.FirstName,
		LastName:       req.LastName,
		Email:          req.Email,
		Password:       req.Password,
		PhoneNumber:    req.PhoneNumber,
		DOB:            dob,
		IsForeigner:    req.IsForeigner,
		DrivingLicense: license,
		Passport:       passport,
	})
	if err != nil {
		serviceError(c, err)
		return
	}

	response.Success(c, http.StatusCreated, gin.H{
		"id":    u.ID,
		"email": u.Email,
	}, "user registered successfully", nil)
}

// Login POST /api/auth/login
func (h *AuthHandler) Login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error[any](c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err))
		return
	}

	u, token, exp, err := h.Svc.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		serviceError(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{
		"token": token,
		"user": gin.H{
			"id":    u.ID,
			"email": u.Email,
			"role":  u.Role,
		},
	}, "login successful", map[string]any{"expires_at": exp})
}
