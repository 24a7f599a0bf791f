package discord

import (
	"context"
	"strings"

	"github.com/bwmarrin/discordgo"
	"github.com/rs/zerolog/log"
)

// DefaultDisplayName is used when a user has no usable name at all
const DefaultDisplayName = "player"

// displayName resolves the name shown for a user: server nickname, then
// global name, then username.
func displayName(member *discordgo.Member, user *discordgo.User) string {
	if member != nil {
		if nick := strings.TrimSpace(member.Nick); nick != "" {
			return nick
		}
		if user == nil {
			user = member.User
		}
	}

	if user != nil {
		if name := strings.TrimSpace(user.GlobalName); name != "" {
			return name
		}
		if name := strings.TrimSpace(user.Username); name != "" {
			return name
		}
	}

	return DefaultDisplayName
}

// interactionUser returns the invoking user of an interaction, which
// arrives on Member inside guilds and on User in direct messages.
func interactionUser(i *discordgo.InteractionCreate) (*discordgo.User, *discordgo.Member) {
	if i.Member != nil && i.Member.User != nil {
		return i.Member.User, i.Member
	}
	return i.User, nil
}

// PermissionFunc returns the permission bits a user holds in a channel
type PermissionFunc func(userID, channelID string) (int64, error)

// Authorizer answers game permission questions from channel permissions
// and a fixed list of privileged users
type Authorizer struct {
	permissions PermissionFunc
	privileged  map[string]bool
}

// NewAuthorizer creates an authorizer. A nil permission func makes nobody an administrator.
func NewAuthorizer(permissions PermissionFunc, privilegedIDs []string) *Authorizer {
	privileged := make(map[string]bool, len(privilegedIDs))
	for _, id := range privilegedIDs {
		if id = strings.TrimSpace(id); id != "" {
			privileged[id] = true
		}
	}

	return &Authorizer{
		permissions: permissions,
		privileged:  privileged,
	}
}

// SessionPermissions adapts a discordgo session to a PermissionFunc
func SessionPermissions(s *discordgo.Session) PermissionFunc {
	return func(userID, channelID string) (int64, error) {
		return s.UserChannelPermissions(userID, channelID)
	}
}

// IsAdministrator reports whether the user can administrate or manage messages in the channel
func (a *Authorizer) IsAdministrator(ctx context.Context, sessionID, userID string) bool {
	if a.permissions == nil || userID == "" {
		return false
	}

	perms, err := a.permissions(userID, sessionID)
	if err != nil {
		log.Warn().Err(err).Str("session", sessionID).Str("user", userID).Msg("could not resolve channel permissions")
		return false
	}

	return perms&discordgo.PermissionAdministrator != 0 || perms&discordgo.PermissionManageMessages != 0
}

// IsPrivileged reports whether the user is on the privileged list
func (a *Authorizer) IsPrivileged(ctx context.Context, userID string) bool {
	return a.privileged[userID]
}
