package roster

type RosterContainer struct {
	Repo    StudentRepository
	Handler *Handler
}

func NewRosterContainer() *RosterContainer {
	repo := NewStaticRepository(DefaultStudents)

	return &RosterContainer{
		Repo:    repo,
		Handler: NewHandler(repo),
	}
}
