package apierrors

const (
	MsgLoginSuccess        = "loginSuccess"
	MsgLoginFailed         = "loginFailed"
	MsgRegisterSuccess     = "registerSuccess"
	MsgRegisterFailed      = "registerFailed"
	MsgLogoutSuccess       = "logoutSuccess"
	MsgSessionExpired      = "sessionExpired"
	MsgNotLoggedIn         = "notLoggedIn"
	MsgNetworkError        = "networkError"
	MsgFailListTasks       = "failListTasks"
	MsgFailCreateTask      = "failCreateTask"
	MsgFailUpdateTask      = "failUpdateTask"
	MsgFailDeleteTask      = "failDeleteTask"
	MsgTaskCreated         = "taskCreated"
	MsgTaskUpdated         = "taskUpdated"
	MsgTaskDeleted         = "taskDeleted"
	MsgTitleRequired       = "titleRequired"
	MsgCredentialsRequired = "credentialsRequired"
	MsgPasswordTooShort    = "passwordTooShort"
	MsgTaskBusy            = "taskBusy"
	MsgTaskNotFound        = "taskNotFound"
	MsgInvalidTaskID       = "invalidTaskID"
	MsgNoTasks             = "noTasks"
	MsgNoMatches           = "noMatches"
)
