package common

const (
	EnvKeyGoEnv string = "GO_ENV"

	EnvKeyRunIntegrationTests string = "RUN_INTEGRATION_TESTS"

	EnvKeyFGBackendOrigin string = "FG_BACKEND_ORIGIN"

	EnvKeyFGStubHostPort string = "FG_STUB_HOST_PORT"
	EnvKeyFGStubDBType   string = "FG_STUB_DB_TYPE"
	EnvKeyFGStubDBPath   string = "FG_STUB_DB_PATH"

	EnvKeyFGStubRate  string = "FG_STUB_RATE"
	EnvKeyFGStubBurst string = "FG_STUB_BURST"

	LoggerNameConsoleCore   string = "console_core"
	LoggerNameBackendClient string = "backend_client"
	LoggerNameStubBackend   string = "stub_backend"
	LoggerNameLocale        string = "locale"

	LoggerFieldCategory        string = "category"
	LoggerCategoryAlerts       string = "alerts"
	LoggerCategoryCameras      string = "cameras"
	LoggerCategorySettings     string = "settings"
	LoggerCategoryStats        string = "stats"
	LoggerCategoryHistory      string = "history"
	LoggerCategoryNotification string = "notification"
	LoggerCategoryLocale       string = "locale"
)
