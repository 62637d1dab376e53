// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package main

import (
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"strings"

	"github.com/MKhiriev/go-blog/internal/adapter"
	"github.com/MKhiriev/go-blog/models"
)

const usage = `usage: go-blog-client [-a url] [-token token] [-timeout d] <command> [flags]

commands:
  version
  health
  register  -name NAME -email EMAIL -password PASSWORD
  login     -email EMAIL -password PASSWORD
  users list
  users create -type blogger|admin -name NAME -email EMAIL -password PASSWORD
  posts list [-public]
  posts create -title TITLE -content CONTENT [-hidden]
  posts update -id ID [-title TITLE] [-content CONTENT]
  posts visibility -id ID -hidden=true|false
  posts delete -id ID [-admin]
`

var errUnknownCommand = errors.New("unknown command")

// app maps command lines onto [adapter.ServerAdapter] calls and prints the
// results as JSON.
type app struct {
	server adapter.ServerAdapter
	out    io.Writer
	errOut io.Writer
}

func newApp(server adapter.ServerAdapter, out, errOut io.Writer) *app {
	return &app{server: server, out: out, errOut: errOut}
}

func (a *app) run(ctx context.Context, args []string) error {
	if len(args) == 0 {
		fmt.Fprint(a.errOut, usage)
		return flag.ErrHelp
	}

	cmd, rest := args[0], args[1:]
	switch cmd {
	case "version":
		v, err := a.server.Version(ctx)
		if err != nil {
			return err
		}
		fmt.Fprintln(a.out, v)
		return nil
	case "health":
		if err := a.server.Health(ctx); err != nil {
			return err
		}
		return a.print(models.HealthResponse{Status: "ok"})
	case "register":
		return a.register(ctx, rest)
	case "login":
		return a.login(ctx, rest)
	case "users":
		return a.subcommand(ctx, cmd, rest, map[string]func(context.Context, []string) error{
			"list":   a.listUsers,
			"create": a.createUser,
		})
	case "posts":
		return a.subcommand(ctx, cmd, rest, map[string]func(context.Context, []string) error{
			"list":       a.listPosts,
			"create":     a.createPost,
			"update":     a.updatePost,
			"visibility": a.updateVisibility,
			"delete":     a.deletePost,
		})
	case "help", "-h", "--help":
		fmt.Fprint(a.out, usage)
		return nil
	default:
		fmt.Fprint(a.errOut, usage)
		return fmt.Errorf("%w: %q", errUnknownCommand, cmd)
	}
}

func (a *app) subcommand(ctx context.Context, group string, args []string, cmds map[string]func(context.Context, []string) error) error {
	if len(args) == 0 {
		fmt.Fprint(a.errOut, usage)
		return fmt.Errorf("%w: %s needs a subcommand", errUnknownCommand, group)
	}

	cmd, ok := cmds[args[0]]
	if !ok {
		fmt.Fprint(a.errOut, usage)
		return fmt.Errorf("%w: %s %s", errUnknownCommand, group, args[0])
	}
	return cmd(ctx, args[1:])
}

func (a *app) flagSet(name string) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(a.errOut)
	return fs
}

func (a *app) register(ctx context.Context, args []string) error {
	var req models.RegisterRequest
	fs := a.flagSet("register")
	fs.StringVar(&req.Name, "name", "", "user name")
	fs.StringVar(&req.Email, "email", "", "email")
	fs.StringVar(&req.Password, "password", "", "password")
	if err := fs.Parse(args); err != nil {
		return err
	}

	return a.server.Register(ctx, req)
}

func (a *app) login(ctx context.Context, args []string) error {
	var req models.LoginRequest
	fs := a.flagSet("login")
	fs.StringVar(&req.Email, "email", "", "email")
	fs.StringVar(&req.Password, "password", "", "password")
	if err := fs.Parse(args); err != nil {
		return err
	}

	token, err := a.server.Login(ctx, req)
	if err != nil {
		return err
	}
	return a.print(models.LoginResponse{Token: token})
}

func (a *app) listUsers(ctx context.Context, args []string) error {
	if err := a.flagSet("users list").Parse(args); err != nil {
		return err
	}

	users, err := a.server.ListUsers(ctx)
	if err != nil {
		return err
	}
	return a.print(users)
}

func (a *app) createUser(ctx context.Context, args []string) error {
	var req models.CreateUserRequest
	var userType string
	fs := a.flagSet("users create")
	fs.StringVar(&userType, "type", string(models.Blogger), "user type (blogger, admin)")
	fs.StringVar(&req.Name, "name", "", "user name")
	fs.StringVar(&req.Email, "email", "", "email")
	fs.StringVar(&req.Password, "password", "", "password")
	if err := fs.Parse(args); err != nil {
		return err
	}
	req.Type = models.UserType(strings.ToLower(userType))

	return a.server.CreateUser(ctx, req)
}

func (a *app) listPosts(ctx context.Context, args []string) error {
	var public bool
	fs := a.flagSet("posts list")
	fs.BoolVar(&public, "public", false, "list public posts of everyone instead of own posts")
	if err := fs.Parse(args); err != nil {
		return err
	}

	var (
		posts []models.Post
		err   error
	)
	if public {
		posts, err = a.server.ListPublicPosts(ctx)
	} else {
		posts, err = a.server.ListOwnPosts(ctx)
	}
	if err != nil {
		return err
	}
	return a.print(posts)
}

func (a *app) createPost(ctx context.Context, args []string) error {
	var req models.CreatePostRequest
	fs := a.flagSet("posts create")
	fs.StringVar(&req.Title, "title", "", "post title")
	fs.StringVar(&req.Content, "content", "", "post content")
	fs.BoolVar(&req.IsHidden, "hidden", false, "hide the post from the public feed")
	if err := fs.Parse(args); err != nil {
		return err
	}

	return a.server.CreatePost(ctx, req)
}

func (a *app) updatePost(ctx context.Context, args []string) error {
	var id, title, content string
	fs := a.flagSet("posts update")
	fs.StringVar(&id, "id", "", "post id")
	fs.StringVar(&title, "title", "", "new title")
	fs.StringVar(&content, "content", "", "new content")
	if err := fs.Parse(args); err != nil {
		return err
	}

	// only flags given on the command line are sent
	var req models.UpdatePostRequest
	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "title":
			req.Title = &title
		case "content":
			req.Content = &content
		}
	})

	n, err := a.server.UpdatePost(ctx, id, req)
	if err != nil {
		return err
	}
	return a.print([]int64{n})
}

func (a *app) updateVisibility(ctx context.Context, args []string) error {
	var id string
	var hidden bool
	fs := a.flagSet("posts visibility")
	fs.StringVar(&id, "id", "", "post id")
	fs.BoolVar(&hidden, "hidden", false, "hide the post from the public feed")
	if err := fs.Parse(args); err != nil {
		return err
	}

	n, err := a.server.UpdateVisibility(ctx, id, hidden)
	if err != nil {
		return err
	}
	return a.print([]int64{n})
}

func (a *app) deletePost(ctx context.Context, args []string) error {
	var id string
	var asAdmin bool
	fs := a.flagSet("posts delete")
	fs.StringVar(&id, "id", "", "post id")
	fs.BoolVar(&asAdmin, "admin", false, "delete a post of any author (admins only)")
	if err := fs.Parse(args); err != nil {
		return err
	}

	var (
		n   int64
		err error
	)
	if asAdmin {
		n, err = a.server.DeleteAnyPost(ctx, id)
	} else {
		n, err = a.server.DeletePost(ctx, id)
	}
	if err != nil {
		return err
	}
	return a.print([]int64{n})
}

func (a *app) print(v any) error {
	enc := json.NewEncoder(a.out)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
