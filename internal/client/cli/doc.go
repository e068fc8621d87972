// Package cli provides the interactive friendsdir terminal client.
//
// It wires configuration, the local token database, the API client and the state
// store, then runs a REPL. Every command is a thin view over one store action:
// it reads form fields, calls the store and prints the returned Result.
//
// Commands available to everyone: signup, signin, help, exit.
// Signed in: me, signout, friends [owner], addfriend [owner],
// editfriend <id>, delfriend <id>, edituser <id>.
// Admins additionally: users, total, adduser, deluser <id>, resetpw <id>.
package cli
