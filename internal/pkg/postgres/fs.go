package postgres

import "io/fs"

func subFS() fs.FS {
	sub, err := fs.Sub(migrations, "migrations")
	if err != nil {
		// путь зашит в go:embed, ошибка возможна только при опечатке
		panic(err)
	}
	return sub
}
