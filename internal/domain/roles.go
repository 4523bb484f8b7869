package domain

// Actor пользователь, от имени которого выполняется операция.
type Actor struct {
	ID   int64
	Role Role
}

// Authenticated истинно для любого пользователя с корректным id и известной ролью.
func Authenticated(a Actor) bool {
	return a.ID > 0 && a.Role.Valid()
}

func SuperAdminOnly(a Actor) bool {
	return Authenticated(a) && a.Role == RoleSuperAdmin
}

func RMOnly(a Actor) bool {
	return Authenticated(a) && a.Role == RoleRM
}

func CustomerOnly(a Actor) bool {
	return Authenticated(a) && a.Role == RoleCustomer
}

func SuperAdminOrRM(a Actor) bool {
	return SuperAdminOnly(a) || RMOnly(a)
}

// RolePredicate проверка доступа, которой закрыта операция.
type RolePredicate func(Actor) bool
