package auth

import (
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/sgal-lab/sgal-api/internal/application/dto"
	"github.com/sgal-lab/sgal-api/internal/domain"
	"github.com/sgal-lab/sgal-api/internal/domain/entity"
	"github.com/sgal-lab/sgal-api/internal/domain/repository"
	"github.com/sgal-lab/sgal-api/pkg/jwt"
)

// JWTConfig configuración para generación de tokens de sesión.
type JWTConfig struct {
	Secret   string
	ExpHours int
	Issuer   string
}

// AuthUseCase casos de uso de autenticación y administración de usuarios.
type AuthUseCase struct {
	userRepo  repository.UserRepository
	grupoRepo repository.GrupoRepository
	jwtCfg    JWTConfig
}

// NewAuthUseCase construye el caso de uso de auth.
func NewAuthUseCase(userRepo repository.UserRepository, grupoRepo repository.GrupoRepository, jwtCfg JWTConfig) *AuthUseCase {
	return &AuthUseCase{userRepo: userRepo, grupoRepo: grupoRepo, jwtCfg: jwtCfg}
}

// Register crea un usuario: valida unicidad de email y username, hashea el
// password con bcrypt y persiste. Solo lo invoca un admin (lo gatea la ruta).
func (uc *AuthUseCase) Register(in dto.RegisterRequest) (*dto.UserResponse, error) {
	if in.Name == "" || in.Email == "" || in.Password == "" || in.Cargo == "" || in.Iniciales == "" {
		return nil, domain.ErrInvalidInput
	}
	if existing, _ := uc.userRepo.GetByEmail(in.Email); existing != nil {
		return nil, domain.ErrEmailAlreadyExists
	}
	if in.Username != "" {
		if existing, _ := uc.userRepo.GetByUsername(in.Username); existing != nil {
			return nil, domain.ErrDuplicate
		}
	}
	role := in.Role
	if role == "" {
		role = entity.RoleUser
	}
	if !entity.ValidRole(role) {
		return nil, domain.ErrInvalidInput
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	now := time.Now()
	user := &entity.User{
		ID:           uuid.New().String(),
		Name:         in.Name,
		Username:     in.Username,
		Email:        in.Email,
		PasswordHash: string(hash),
		Role:         role,
		Cargo:        in.Cargo,
		Iniciales:    in.Iniciales,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := uc.userRepo.Create(user); err != nil {
		return nil, err
	}
	return dto.NewUserResponse(user), nil
}

// Login verifica email/password y genera el JWT de sesión.
// Devuelve el usuario autenticado con sus grupos poblados.
func (uc *AuthUseCase) Login(in dto.LoginRequest) (token string, user *dto.UserResponse, err error) {
	if in.Email == "" || in.Password == "" {
		return "", nil, domain.ErrInvalidInput
	}
	u, err := uc.userRepo.GetByEmail(in.Email)
	if err != nil {
		return "", nil, err
	}
	if u == nil {
		return "", nil, domain.ErrUserNotFound
	}
	if err := bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(in.Password)); err != nil {
		return "", nil, domain.ErrUnauthorized
	}
	if err := uc.populateGrupos(u); err != nil {
		return "", nil, err
	}
	token, err = jwt.Generate(uc.jwtCfg.Secret, u.ID, u.Role, uc.jwtCfg.Issuer, uc.jwtCfg.ExpHours)
	if err != nil {
		return "", nil, err
	}
	return token, dto.NewUserResponse(u), nil
}

// Profile devuelve el usuario autenticado con sus grupos.
func (uc *AuthUseCase) Profile(userID string) (*dto.UserResponse, error) {
	u, err := uc.userRepo.GetByID(userID)
	if err != nil {
		return nil, err
	}
	if u == nil {
		return nil, domain.ErrUserNotFound
	}
	if err := uc.populateGrupos(u); err != nil {
		return nil, err
	}
	return dto.NewUserResponse(u), nil
}

// ListUsers devuelve todos los usuarios con grupos poblados (solo admin).
func (uc *AuthUseCase) ListUsers() ([]dto.UserResponse, error) {
	users, err := uc.userRepo.List()
	if err != nil {
		return nil, err
	}
	out := make([]dto.UserResponse, 0, len(users))
	for _, u := range users {
		if err := uc.populateGrupos(u); err != nil {
			return nil, err
		}
		out = append(out, *dto.NewUserResponse(u))
	}
	return out, nil
}

// UpdateUser aplica una actualización parcial, re-validando unicidad de email
// y username solo cuando cambian.
func (uc *AuthUseCase) UpdateUser(id string, in dto.UpdateUserRequest) (*dto.UserResponse, error) {
	u, err := uc.userRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if u == nil {
		return nil, domain.ErrUserNotFound
	}
	if in.Email != nil && *in.Email != u.Email {
		if existing, _ := uc.userRepo.GetByEmail(*in.Email); existing != nil {
			return nil, domain.ErrEmailAlreadyExists
		}
		u.Email = *in.Email
	}
	if in.Username != nil && *in.Username != u.Username {
		if existing, _ := uc.userRepo.GetByUsername(*in.Username); existing != nil {
			return nil, domain.ErrDuplicate
		}
		u.Username = *in.Username
	}
	if in.Name != nil {
		u.Name = *in.Name
	}
	if in.Role != nil {
		if !entity.ValidRole(*in.Role) {
			return nil, domain.ErrInvalidInput
		}
		u.Role = *in.Role
	}
	if in.Cargo != nil {
		u.Cargo = *in.Cargo
	}
	if in.Iniciales != nil {
		u.Iniciales = *in.Iniciales
	}
	u.UpdatedAt = time.Now()
	if err := uc.userRepo.Update(u); err != nil {
		return nil, err
	}
	if in.Grupos != nil {
		if err := uc.grupoRepo.SetUserGrupos(u.ID, in.Grupos); err != nil {
			return nil, err
		}
	}
	if err := uc.populateGrupos(u); err != nil {
		return nil, err
	}
	return dto.NewUserResponse(u), nil
}

// DeleteUser elimina un usuario por ID.
func (uc *AuthUseCase) DeleteUser(id string) error {
	u, err := uc.userRepo.GetByID(id)
	if err != nil {
		return err
	}
	if u == nil {
		return domain.ErrUserNotFound
	}
	return uc.userRepo.Delete(id)
}

func (uc *AuthUseCase) populateGrupos(u *entity.User) error {
	grupos, err := uc.grupoRepo.ListByUser(u.ID)
	if err != nil {
		return err
	}
	u.Grupos = grupos
	return nil
}
