package auth

import (
	"github.com/jhoicas/vitrina-api/internal/application/dto"
	"github.com/jhoicas/vitrina-api/internal/domain"
	"github.com/jhoicas/vitrina-api/pkg/jwt"
	"golang.org/x/crypto/bcrypt"
)

// JWTConfig configuración para generación de tokens.
type JWTConfig struct {
	Secret     string
	ExpMinutes int
	Issuer     string
}

// AuthUseCase login del panel admin: una sola credencial compartida comparada
// contra un hash bcrypt de configuración. Es un candado cosmético — la
// protección real es la cuenta Google del lado del Apps Script — pero evita
// que el panel quede abierto a cualquier visitante.
type AuthUseCase struct {
	passwordHash string
	jwtCfg       JWTConfig
}

// NewAuthUseCase construye el caso de uso. passwordHash vacío deshabilita el login.
func NewAuthUseCase(passwordHash string, jwtCfg JWTConfig) *AuthUseCase {
	return &AuthUseCase{passwordHash: passwordHash, jwtCfg: jwtCfg}
}

// Login verifica la contraseña y genera el token de sesión admin.
func (uc *AuthUseCase) Login(in dto.LoginRequest) (*dto.LoginResponse, error) {
	if uc.passwordHash == "" {
		return nil, domain.ErrUnauthorized
	}
	if err := bcrypt.CompareHashAndPassword([]byte(uc.passwordHash), []byte(in.Password)); err != nil {
		return nil, domain.ErrUnauthorized
	}
	token, err := jwt.Generate(uc.jwtCfg.Secret, "admin", uc.jwtCfg.Issuer, uc.jwtCfg.ExpMinutes)
	if err != nil {
		return nil, err
	}
	return &dto.LoginResponse{Token: token, ExpiresIn: uc.jwtCfg.ExpMinutes * 60}, nil
}
