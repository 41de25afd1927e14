// Package policy centralizes the role × operation × ownership matrix that
// every service consults before a read or write. Services resolve record
// existence before ownership, so a non-owner probing a missing id always
// sees NotFound rather than Forbidden.
package policy

import "c2hr/internal/model"

// Action names an operation subject to access control.
type Action string

const (
	ActionCreateJob        Action = "job:create"
	ActionUpdateJob        Action = "job:update"
	ActionDeleteJob        Action = "job:delete"
	ActionListEmployerJobs Action = "job:list-by-employer"

	ActionApply               Action = "application:create"
	ActionListOwnApplications Action = "application:list-own"
	ActionListJobApplications Action = "application:list-by-job"
	ActionListAllApplications Action = "application:list-all"
	ActionSetApplicationStatus Action = "application:set-status"

	ActionApproveEmployer Action = "user:approve"
	ActionListUsers       Action = "user:list"
	ActionUpdateProfile   Action = "user:update-profile"

	ActionManageBookmarks Action = "bookmark:manage"

	ActionUpsertCompany Action = "company:upsert"
)

// Effect is the outcome of a policy lookup.
type Effect int

const (
	// Deny refuses the action outright.
	Deny Effect = iota
	// Allow permits the action with no ownership condition.
	Allow
	// AllowOwner permits the action only against records the caller owns;
	// the owning service must still verify ownership after loading the record.
	AllowOwner
)

var table = map[model.Role]map[Action]Effect{
	model.RoleCandidate: {
		ActionApply:               Allow,
		ActionListOwnApplications: Allow,
		ActionUpdateProfile:       Allow,
		ActionManageBookmarks:     Allow,
	},
	model.RoleEmployer: {
		ActionCreateJob:            Allow,
		ActionUpdateJob:            AllowOwner,
		ActionDeleteJob:            AllowOwner,
		ActionListEmployerJobs:     Allow,
		ActionListJobApplications:  AllowOwner,
		ActionSetApplicationStatus: AllowOwner,
		ActionUpsertCompany:        Allow,
		ActionUpdateProfile:        Allow,
		ActionManageBookmarks:      Allow,
	},
	model.RoleConsultant: {
		ActionCreateJob:            Allow,
		ActionListEmployerJobs:     Allow,
		ActionListJobApplications:  Allow,
		ActionListAllApplications:  Allow,
		ActionSetApplicationStatus: Allow,
		ActionApproveEmployer:      Allow,
		ActionListUsers:            Allow,
		ActionUpdateProfile:        Allow,
		ActionManageBookmarks:      Allow,
	},
}

// Can looks up the effect for a caller performing an action. Unknown roles
// and unlisted (role, action) pairs are denied.
func Can(user *model.User, action Action) Effect {
	if user == nil {
		return Deny
	}
	actions, ok := table[user.Role]
	if !ok {
		return Deny
	}
	return actions[action]
}

// CanActAsEmployer is the approval gate consulted before employer-privileged
// job writes. Consultants bypass the approval check entirely; employers must
// be approved; candidates never qualify.
func CanActAsEmployer(user *model.User) bool {
	if user == nil {
		return false
	}
	switch user.Role {
	case model.RoleEmployer:
		return user.IsApproved
	case model.RoleConsultant:
		return true
	case model.RoleCandidate:
		return false
	}
	return false
}
