package commands

const (
	_etc = "/usr/local/etc/wstg"
	_var = "/usr/local/var/wstg"

	DEFAULT_WORKDIR     = _var
	DEFAULT_CREDENTIALS = _etc + "/upload/.google/credentials.json"
)
