package cli

import (
	"context"
	"flag"
	"fmt"

	"github.com/google/uuid"

	"github.com/dmitrijs2005/appsprov/internal/atom"
	"github.com/dmitrijs2005/appsprov/internal/common"
)

// NewUser renders a payload creating an active user. The password is
// prompted for when -password is not given; -quota defaults to the
// configured default quota and 0 leaves the quota node out.
func (a *App) NewUser(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("new-user", flag.ContinueOnError)
	fs.SetOutput(a.errOut)

	username := fs.String("user", "", "user name")
	first := fs.String("first", "", "given name")
	last := fs.String("last", "", "family name")
	quota := fs.Int("quota", a.config.DefaultQuota, "quota in megabytes (0 = domain default)")
	password := fs.String("password", "", "password (prompted when omitted)")
	out := fs.String("out", "", "write the payload to this file instead of stdout")

	if err := fs.Parse(args); err != nil {
		return err
	}

	if *username == "" || *first == "" || *last == "" {
		return fmt.Errorf("%w: new-user needs -user, -first and -last", common.ErrMissingArgument)
	}
	if *quota < 0 {
		return fmt.Errorf("%w: -quota must not be negative, got %d", common.ErrInvalidArgument, *quota)
	}

	pw := []byte(*password)
	if len(pw) == 0 {
		var err error
		if pw, err = getPassword(a.errOut); err != nil {
			return err
		}
	}
	defer common.WipeByteArray(pw)

	var limit *int
	if *quota > 0 {
		limit = quota
	}

	log := a.logger.With("build_id", uuid.NewString(), "command", "new-user")

	u, err := a.userBuilder("")
	if err != nil {
		log.Error(ctx, "user document unavailable", "format", a.handler.Format(), "error", err)
		return err
	}
	u.BuildNewUser(*username, *first, *last, string(pw), limit)

	if err := a.write(u, *out); err != nil {
		log.Error(ctx, "write failed", "error", err)
		return err
	}

	log.Info(ctx, "payload built", "user", *username, "quota", *quota)
	return nil
}

// UpdateUser renders a payload carrying only the fields whose flags were
// given. The login node is always present; -suspend marks the account
// suspended and its absence renders suspended="false".
func (a *App) UpdateUser(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("update-user", flag.ContinueOnError)
	fs.SetOutput(a.errOut)

	username := fs.String("user", "", "user name")
	first := fs.String("first", "", "given name")
	last := fs.String("last", "", "family name")
	quota := fs.Int("quota", 0, "quota in megabytes")
	suspend := fs.Bool("suspend", false, "suspend the account")
	password := fs.String("password", "", "new password")
	prompt := fs.Bool("password-prompt", false, "prompt for a new password")
	out := fs.String("out", "", "write the payload to this file instead of stdout")

	if err := fs.Parse(args); err != nil {
		return err
	}

	if *username == "" {
		return fmt.Errorf("%w: update-user needs -user", common.ErrMissingArgument)
	}
	if *quota < 0 {
		return fmt.Errorf("%w: -quota must not be negative, got %d", common.ErrInvalidArgument, *quota)
	}

	set := map[string]bool{}
	fs.Visit(func(f *flag.Flag) { set[f.Name] = true })

	values := atom.UserValues{
		Suspended: suspend,
		Username:  username,
	}
	if set["first"] {
		values.FirstName = first
	}
	if set["last"] {
		values.LastName = last
	}
	if set["quota"] {
		values.Quota = quota
	}

	switch {
	case set["password"]:
		values.Password = password
	case *prompt:
		pw, err := getPassword(a.errOut)
		if err != nil {
			return err
		}
		defer common.WipeByteArray(pw)
		values.Password = atom.String(string(pw))
	}

	log := a.logger.With("build_id", uuid.NewString(), "command", "update-user")

	u, err := a.userBuilder("")
	if err != nil {
		log.Error(ctx, "user document unavailable", "format", a.handler.Format(), "error", err)
		return err
	}
	u.SetValues(values)

	if err := a.write(u, *out); err != nil {
		log.Error(ctx, "write failed", "error", err)
		return err
	}

	fields := make([]string, 0, len(set))
	for name := range set {
		if name != "password" {
			fields = append(fields, name)
		}
	}
	log.Info(ctx, "payload built", "user", *username, "fields", fields, "password_changed", values.Password != nil)
	return nil
}
