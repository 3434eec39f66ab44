package database

// DataStore defines the unified interface for all data operations needed by
// the service layer. It is composed of smaller, domain-specific interfaces
// so consumers can depend on the narrow slice they actually use.
type DataStore interface {
	TagRepository
	TaskRepository
}
