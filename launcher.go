package main

import (
	"fmt"
	"os"
	"os/exec"
	"runtime"
	"time"
)

// Локальный запуск: сервер на in-memory хранилище (если DB_DRIVER не задан)
// и сборка CLI рядом.
func main() {
	fmt.Println("Запуск Contact Keeper...")

	clientName := "contactkeeper"
	if runtime.GOOS == "windows" {
		clientName = "contactkeeper.exe"
	}

	server := exec.Command("go", "run", "./cmd/server")
	server.Stdout = os.Stdout
	server.Stderr = os.Stderr
	server.Env = os.Environ()
	if os.Getenv("DB_DRIVER") == "" {
		server.Env = append(server.Env, "DB_DRIVER=memory")
	}

	if err := server.Start(); err != nil {
		fmt.Printf("Ошибка запуска сервера: %v\n", err)
		return
	}

	time.Sleep(3 * time.Second)

	if _, err := os.Stat(clientName); os.IsNotExist(err) {
		fmt.Println("Сборка клиента...")
		build := exec.Command("go", "build", "-o", clientName, "./cmd/contactkeeper")
		build.Stdout = os.Stdout
		build.Stderr = os.Stderr
		if err := build.Run(); err != nil {
			fmt.Printf("Ошибка сборки клиента: %v\n", err)
		}
		if runtime.GOOS != "windows" {
			os.Chmod(clientName, 0o755)
		}
	}

	fmt.Println("Сервер запущен")
	if runtime.GOOS == "windows" {
		fmt.Println("Данный терминал не закрывай. Открой новый и запускай: .\\contactkeeper.exe register --name ... --email ...")
	} else {
		fmt.Println("Данный терминал не закрывай. Открой новый и запускай: ./contactkeeper register --name ... --email ...")
	}

	server.Wait()
}
