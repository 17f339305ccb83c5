package domain

import (
	"github.com/golang-jwt/jwt/v5"
)

// Papéis aceitos no claim "role" do token
const (
	RoleAdmin   = "admin"
	RoleManager = "manager"
	RoleSales   = "sales"
)

// Claims são as informações do token emitido pelo provedor de identidade.
// O subject identifica o usuário dono dos pedidos manuais e das metas.
type Claims struct {
	Name  string `json:"name,omitempty"`
	Email string `json:"email,omitempty"`
	Role  string `json:"role,omitempty"`
	jwt.RegisteredClaims
}

// UserID devolve o identificador do usuário (subject do token)
func (c *Claims) UserID() string {
	if c == nil {
		return ""
	}
	return c.Subject
}
