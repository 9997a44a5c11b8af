package main

import (
	"bufio"
	"flag"
	"fmt"
	"log"
	"os"
	"strconv"

	"github.com/mailru/chrono/pkg/chrono"
	"github.com/mailru/chrono/pkg/safemath"
)

// ldflags
var (
	Version     string
	BuildTime   string
	BuildOS     string
	BuildCommit string
)

func main() {
	in := flag.String("in", "", "value to convert; read lines from stdin when empty")
	from := flag.String("from", "instant", "input form: millis|instant|date|time")
	to := flag.String("to", "millis", "output form: millis|instant|date|time")
	version := flag.Bool("version", false, "print version")
	flag.Parse()

	if *version {
		fmt.Printf("Version %s; BuildCommit: %s\n", Version, BuildCommit)
		os.Exit(0)
	}

	if *in != "" {
		out, err := convert(*in, *from, *to)
		if err != nil {
			log.Fatalf("error convert %q: %s", *in, err)
		}

		fmt.Println(out)

		return
	}

	scanner := bufio.NewScanner(os.Stdin)
	for scanner.Scan() {
		out, err := convert(scanner.Text(), *from, *to)
		if err != nil {
			log.Fatalf("error convert %q: %s", scanner.Text(), err)
		}

		fmt.Println(out)
	}

	if err := scanner.Err(); err != nil {
		log.Fatalf("error read stdin: %s", err)
	}
}

func convert(in, from, to string) (string, error) {
	switch from {
	case "millis":
		msec, err := strconv.ParseInt(in, 10, 64)
		if err != nil {
			return "", err
		}

		i, err := chrono.InstantOfEpochMilli(msec)
		if err != nil {
			return "", err
		}

		return renderInstant(i, to)
	case "instant":
		i, err := chrono.ParseInstant(in)
		if err != nil {
			return "", err
		}

		return renderInstant(i, to)
	case "date":
		d, err := chrono.ParseLocalDate(in)
		if err != nil {
			return "", err
		}

		if to == "millis" {
			return strconv.FormatInt(d.EpochDay()*86400000, 10), nil
		}

		return d.String(), nil
	case "time":
		t, err := chrono.ParseLocalTime(in)
		if err != nil {
			return "", err
		}

		if to == "millis" {
			return strconv.FormatInt(t.MilliOfDay(), 10), nil
		}

		return t.String(), nil
	}

	return "", fmt.Errorf("unknown input form %q", from)
}

func renderInstant(i chrono.Instant, to string) (string, error) {
	switch to {
	case "millis":
		msec, err := i.EpochMilli()
		if err != nil {
			return "", err
		}

		return strconv.FormatInt(msec, 10), nil
	case "instant":
		return i.String(), nil
	case "date":
		d, err := chrono.LocalDateOfEpochDay(safemath.FloorDiv(i.EpochSecond(), 86400))
		if err != nil {
			return "", err
		}

		return d.String(), nil
	case "time":
		t, err := chrono.LocalTimeOfSecondOfDay(safemath.FloorMod(i.EpochSecond(), 86400), i.Nano())
		if err != nil {
			return "", err
		}

		return t.String(), nil
	}

	return "", fmt.Errorf("unknown output form %q", to)
}
