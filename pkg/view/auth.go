package view

type LoginPage struct {
	Base

	Email    string
	ReturnTo string
	Errors   map[string]string
}

type RegisterPage struct {
	Base

	Email     string
	FirstName string
	LastName  string
	Errors    map[string]string
}

type ErrorPage struct {
	Base

	Status    int
	Message   string
	RequestID string
}
