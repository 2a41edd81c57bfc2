package model

import "time"

// Team is an organization team as seen by the directory.
type Team struct {
	Name string
	Slug string
}

// User is an organization member.
type User struct {
	Login string
}

type OwnerKind string

const (
	OwnerKindTeam OwnerKind = "team"
	OwnerKindUser OwnerKind = "user"
)

// Owner is a resolved CODEOWNERS owner, either a team or a user.
type Owner struct {
	Kind OwnerKind
	Team Team
	User User
}

func TeamOwner(team Team) *Owner {
	return &Owner{Kind: OwnerKindTeam, Team: team}
}

func UserOwner(user User) *Owner {
	return &Owner{Kind: OwnerKindUser, User: user}
}

func (x *Owner) IsTeam() bool {
	return x.Kind == OwnerKindTeam
}

// Handle renders the owner the way CODEOWNERS expects: @org/slug or @login.
func (x *Owner) Handle(org string) string {
	if x.IsTeam() {
		return "@" + org + "/" + x.Team.Slug
	}
	return "@" + x.User.Login
}

// Directory is an immutable snapshot of the organization's teams and members.
type Directory struct {
	Teams       []Team
	Users       []User
	RefreshedAt time.Time
}

// Names lists team names first and then user logins, in provider order.
func (x *Directory) Names() []string {
	names := make([]string, 0, len(x.Teams)+len(x.Users))
	for _, team := range x.Teams {
		names = append(names, team.Name)
	}
	for _, user := range x.Users {
		names = append(names, user.Login)
	}
	return names
}
