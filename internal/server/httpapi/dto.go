package httpapi

// credentialsRequest is the body of both /register and /login.
type credentialsRequest struct {
	UserName string `json:"username"`
	Password string `json:"password"`
}

// createTaskRequest is the body of POST /tasks.
type createTaskRequest struct {
	Text string `json:"text"`
}
