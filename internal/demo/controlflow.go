package demo

import (
	"fmt"
	"strconv"
	"strings"
)

// ControlFlow shows if/else, switch, counting and range loops, a while-style loop and a do-while.
func (r *Runner) ControlFlow() {
	r.console.Header("2. Control Flow")

	number := 10
	r.console.Println(Compare(number))

	dayOfWeek := "Monday"
	r.console.Printf("%s is a %s\n", dayOfWeek, DayType(dayOfWeek))

	r.console.Println("For loop (0 to 4): " + joinInts(CountUp(5), " ") + " ")
	r.console.Println("Range loop: " + joinInts(RangeOver([]int{10, 20, 30}), " ") + " ")
	r.console.Println("While loop (countdown 3 to 1): " + Countdown(3) + "Liftoff!")

	printed, _ := DoWhile(5, 5)
	r.console.Println("Do-While: " + joinInts(printed, " ") + " ")
	r.console.Println()
}

// Compare describes n relative to 10.
func Compare(n int) string {
	if n > 10 {
		return fmt.Sprintf("%d is greater than 10.", n)
	} else if n < 10 {
		return fmt.Sprintf("%d is less than 10.", n)
	} else {
		return fmt.Sprintf("%d is exactly 10.", n)
	}
}

// DayType maps a day name to "Weekday", "Weekend" or "Invalid day".
func DayType(day string) string {
	switch day {
	case "Monday", "Tuesday", "Wednesday", "Thursday", "Friday":
		return "Weekday"
	case "Saturday", "Sunday":
		return "Weekend"
	default:
		return "Invalid day"
	}
}

// CountUp returns 0..n-1.
func CountUp(n int) []int {
	var out []int
	for i := 0; i < n; i++ {
		out = append(out, i)
	}
	return out
}

// RangeOver copies values in order using a range loop.
func RangeOver(values []int) []int {
	var out []int
	for _, v := range values {
		out = append(out, v)
	}
	return out
}

// Countdown returns "3... 2... 1... " for from=3.
func Countdown(from int) string {
	var b strings.Builder
	countdown := from
	for countdown > 0 {
		b.WriteString(strconv.Itoa(countdown) + "... ")
		countdown--
	}
	return b.String()
}

// DoWhile runs its body before checking x < limit, so the body always runs
// at least once. It returns the printed values and the final counter.
func DoWhile(start int, limit int) ([]int, int) {
	var printed []int
	x := start
	for {
		printed = append(printed, x)
		x++
		if !(x < limit) {
			break
		}
	}
	return printed, x
}

func joinInts(values []int, sep string) string {
	parts := make([]string, 0, len(values))
	for _, v := range values {
		parts = append(parts, strconv.Itoa(v))
	}
	return strings.Join(parts, sep)
}
