package root

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/spf13/cobra"

	"moodline/internal/journal"
	"moodline/internal/storage"
	"moodline/internal/ui"
)

func openDB(ctx context.Context) (*sql.DB, func(), error) {
	path, err := storage.ResolveDBPath()
	if err != nil {
		return nil, nil, err
	}
	db, err := storage.Open(ctx, path)
	if err != nil {
		return nil, nil, err
	}
	cleanup := func() {
		_ = db.Close()
	}
	return db, cleanup, nil
}

func openService(ctx context.Context, cmd *cobra.Command) (*journal.Service, func(), error) {
	db, cleanup, err := openDB(ctx)
	if err != nil {
		return nil, nil, err
	}
	svc := journal.NewService(db)
	svc.SetWarnFunc(func(format string, args ...any) {
		cmd.PrintErrln(ui.Warn.Render(ui.IconWarn + " " + fmt.Sprintf(format, args...)))
	})
	return svc, cleanup, nil
}
