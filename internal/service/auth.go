package service

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"github.com/Mukunt07/subramaniya-mess/internal/conf"
	"github.com/Mukunt07/subramaniya-mess/pkg/jwt"
)

const tokenTTL = 24 * time.Hour

// AuthService signs the single admin account in and issues JWTs for the rest
// of the API.
type AuthService struct {
	adminConfig *conf.AdminConfig
	jwtManager  *jwt.Manager
	logger      *zap.Logger
}

func NewAuthService(adminConfig *conf.AdminConfig, jwtManager *jwt.Manager, logger *zap.Logger) *AuthService {
	return &AuthService{
		adminConfig: adminConfig,
		jwtManager:  jwtManager,
		logger:      logger.Named("AuthService"),
	}
}

type loginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type loginResponse struct {
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expiresAt"`
}

// Login verifies the admin credentials against the configured bcrypt hash.
func (s *AuthService) Login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		Fail(c, http.StatusBadRequest, "username and password are required")
		return
	}

	if req.Username != s.adminConfig.Username {
		Fail(c, http.StatusUnauthorized, "invalid credentials")
		return
	}
	if err := bcrypt.CompareHashAndPassword([]byte(s.adminConfig.PasswordHash), []byte(req.Password)); err != nil {
		Fail(c, http.StatusUnauthorized, "invalid credentials")
		return
	}

	expiresAt := time.Now().Add(tokenTTL)
	token, err := s.jwtManager.Generate(
		map[string]interface{}{"username": req.Username},
		jwt.WithExpiresAt(expiresAt),
	)
	if err != nil {
		s.logger.Error("Login: failed to generate token", zap.Error(err))
		Fail(c, http.StatusInternalServerError, "internal server error")
		return
	}

	OK(c, loginResponse{Token: token, ExpiresAt: expiresAt})
}
