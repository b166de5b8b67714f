package main

import "fmt"

// Run executes the chat command.
func (c *ChatCmd) Run(deps *Dependencies) error {
	reply, err := deps.RolePlayer.Chat(deps.Ctx, c.Persona, nil, c.Message)
	if err != nil {
		return errorMessage(deps, err)
	}

	fmt.Fprintln(deps.Stdout, reply)
	return nil
}
