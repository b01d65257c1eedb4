package domain

// Role роль актора, полученная от внешнего auth-провайдера
type Role string

const (
	RoleClient Role = "client"
	RoleAdmin  Role = "admin"
)

// Actor текущий пользователь операции ({id, role} от auth-коллаборатора).
// Сервис не реализует аутентификацию сам.
type Actor struct {
	ID   int64
	Role Role
}

// IsAdmin returns true if the actor has administrative rights
func (a Actor) IsAdmin() bool {
	return a.Role == RoleAdmin
}

// CanAccessBooking применяет единое правило авторизации:
// операция разрешена администратору или владеющему клиенту
func (a Actor) CanAccessBooking(b *Booking) bool {
	return a.IsAdmin() || b.IsOwnedBy(a.ID)
}
