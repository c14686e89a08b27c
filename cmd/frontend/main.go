// Dev frontend manager: serves the static dashboard on :3000 and can run
// it as a background process with a pidfile, for local development only.
package main

import (
	"errors"
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/exec"
	"path/filepath"
	"strconv"
	"strings"
	"syscall"
)

func main() {
	var (
		command = flag.String("command", "run", "Command: run, start, stop, status")
		addr    = flag.String("addr", ":3000", "Address to serve the frontend on")
		dir     = flag.String("dir", "frontend", "Directory with the static dashboard files")
		pidFile = flag.String("pidfile", "logs/frontend.pid", "Path to the pidfile")
		logFile = flag.String("logfile", "logs/frontend.log", "Path to the background server log")
	)
	flag.Parse()

	switch *command {
	case "run":
		if err := run(*addr, *dir); err != nil {
			log.Fatalf("frontend server: %v", err)
		}
	case "start":
		if err := start(*addr, *dir, *pidFile, *logFile); err != nil {
			log.Fatalf("start: %v", err)
		}
	case "stop":
		if err := stop(*pidFile); err != nil {
			log.Fatalf("stop: %v", err)
		}
	case "status":
		status(*pidFile)
	default:
		fmt.Printf("Unknown command: %s\n", *command)
		fmt.Println("Available commands: run, start, stop, status")
		os.Exit(1)
	}
}

// run serves the dashboard in the foreground. Responses are never cached so
// edits to the dashboard show up on refresh.
func run(addr, dir string) error {
	fileServer := http.FileServer(http.Dir(dir))
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Cache-Control", "no-store")
		w.Header().Set("Access-Control-Allow-Origin", "*")
		fileServer.ServeHTTP(w, r)
		log.Printf("frontend method=%s path=%s", r.Method, r.URL.Path)
	})

	log.Printf("serving %s on %s", dir, addr)
	return http.ListenAndServe(addr, handler)
}

// start launches the server as a detached background process and records
// its pid.
func start(addr, dir, pidFile, logFile string) error {
	if pid, ok := readPID(pidFile); ok && processAlive(pid) {
		return fmt.Errorf("frontend already running with pid %d", pid)
	}

	if err := os.MkdirAll(filepath.Dir(pidFile), 0o755); err != nil {
		return err
	}
	out, err := os.OpenFile(logFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return err
	}
	defer out.Close()

	self, err := os.Executable()
	if err != nil {
		return err
	}

	cmd := exec.Command(self, "-command", "run", "-addr", addr, "-dir", dir)
	cmd.Stdout = out
	cmd.Stderr = out
	cmd.SysProcAttr = &syscall.SysProcAttr{Setsid: true}
	if err := cmd.Start(); err != nil {
		return err
	}

	if err := os.WriteFile(pidFile, []byte(strconv.Itoa(cmd.Process.Pid)), 0o644); err != nil {
		return err
	}
	fmt.Printf("frontend started with pid %d on %s\n", cmd.Process.Pid, addr)
	return nil
}

func stop(pidFile string) error {
	pid, ok := readPID(pidFile)
	if !ok || !processAlive(pid) {
		os.Remove(pidFile)
		return errors.New("frontend is not running")
	}

	if err := syscall.Kill(pid, syscall.SIGTERM); err != nil {
		return fmt.Errorf("signal pid %d: %w", pid, err)
	}
	os.Remove(pidFile)
	fmt.Printf("frontend with pid %d stopped\n", pid)
	return nil
}

func status(pidFile string) {
	if pid, ok := readPID(pidFile); ok && processAlive(pid) {
		fmt.Printf("frontend is running with pid %d\n", pid)
		return
	}
	fmt.Println("frontend is not running")
}

func readPID(pidFile string) (int, bool) {
	data, err := os.ReadFile(pidFile)
	if err != nil {
		return 0, false
	}
	pid, err := strconv.Atoi(strings.TrimSpace(string(data)))
	if err != nil {
		return 0, false
	}
	return pid, true
}

// processAlive probes the pid with signal 0.
func processAlive(pid int) bool {
	return syscall.Kill(pid, 0) == nil
}
