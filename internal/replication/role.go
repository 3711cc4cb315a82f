package replication

// Role представляет роль устройства в репликации.
// Роль задается явно при создании контроллера и неизменна на весь
// срок жизни процесса.
type Role string

// Роли устройств
const (
	// RoleEditor единственная роль, которой разрешено порождать изменения
	RoleEditor Role = "editor"
	// RoleViewer роль-зеркало: только отражает состояние, разосланное редактором
	RoleViewer Role = "viewer"
)

// IsEditor reports whether the role is allowed to originate state changes
func (r Role) IsEditor() bool {
	return r == RoleEditor
}
