package commands

const (
	_etc = "/usr/local/etc/org.owasp.wstg"
	_var = "/usr/local/var/org.owasp.wstg"

	DEFAULT_WORKDIR     = _var
	DEFAULT_CREDENTIALS = _etc + "/upload/.google/credentials.json"
)
