// One-off: go run scripts/seed.go [file]
package main

import (
	"context"
	"fmt"
	"os"

	"tasklite/internal/domain"
	"tasklite/internal/service"
	"tasklite/internal/store"
)

// Seeds a demo data file through the real store and service, one record
// in each state.
func main() {
	path := "todos.json"
	if len(os.Args) > 1 {
		path = os.Args[1]
	}

	st := store.NewFileStore(path)
	svc := service.NewTodoService()

	err := st.Update(context.Background(), func(items []domain.Todo) []domain.Todo {
		items = svc.Add(items, "wire up the staging deploy")
		items = svc.Add(items, "write the release notes")
		items = svc.Add(items, "buy milk")
		items = svc.Toggle(items, items[2].ID)
		items = svc.SoftDelete(items, items[1].ID)
		return items
	})
	if err != nil {
		panic(err)
	}
	fmt.Println("seeded", path)
}
