package core

type Conf struct {
	Version            string `long:"version" description:"version of the hardware model library" env:"QHW_VERSION"`
	DevMode            bool   `long:"dev-mode" description:"run in dev mode" env:"QHW_DEV_MODE"`
	DisableStdoutLog   bool   `long:"disable-stdout-log" description:"do not log in standard output" env:"QHW_DISABLE_STDOUT_LOG"`
	EnableFileLog      bool   `long:"enable-file-log" description:"enable log in file" env:"QHW_ENABLE_FILE_LOG"`
	LogDir             string `long:"log-dir" description:"rotating log file dir" default:"./logs" env:"QHW_LOG_DIR"`
	LogLevel           string `long:"log-level" description:"log level" default:"info" choice:"debug" choice:"info" choice:"warn" choice:"error" env:"QHW_LOG_LEVEL"`
	LogRotationMaxDays int    `long:"log-rotation-max-days" description:"max days of log rotation" default:"7" env:"QHW_LOG_ROTATION_MAX_DAYS"`
	DeviceSettingPath  string `long:"device-setting-path" description:"device setting file path" default:"./device_setting.toml" env:"QHW_DEVICE_SETTING_PATH"`
}
