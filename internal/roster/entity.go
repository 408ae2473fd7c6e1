package roster

type Student struct {
	ID        string `json:"id"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Avatar    string `json:"avatar,omitempty"`
}

func (s Student) FullName() string {
	return s.FirstName + " " + s.LastName
}
