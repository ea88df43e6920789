package store

// Server tables and their column lists, in scan order.
const (
	usersTable      = "users"
	adminsTable     = "admins"
	recruitersTable = "recruiters"
	candidatesTable = "candidates"

	usersEmailKey    = "users_email_key"
	usersGoogleIDKey = "users_google_id_key"
)

var (
	userColumns = []string{
		"user_id", "email", "password_hash", "google_id", "role",
		"is_active", "is_email_verified", "created_at", "updated_at",
	}
	adminColumns     = []string{"user_id", "first_name", "last_name", "created_at", "updated_at"}
	recruiterColumns = []string{"user_id", "company_name", "sector", "created_at", "updated_at"}
	candidateColumns = []string{"user_id", "first_name", "last_name", "birth_date", "created_at", "updated_at"}
)

// Client SQLite queries of the local session key/value table.
const (
	localSessionKeyToken = "token"
	localSessionKeyUser  = "user"

	upsertLocalSessionValue = `INSERT INTO local_session (key, value, updated_at)
		VALUES (?, ?, CURRENT_TIMESTAMP)
		ON CONFLICT (key) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at;`

	selectLocalSessionValue = `SELECT value FROM local_session WHERE key = ?;`

	deleteLocalSession = `DELETE FROM local_session;`
)
