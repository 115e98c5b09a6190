// Package shapes is the struct-and-methods walkthrough: a Rectangle with
// value methods and a constructor, and a User built and updated through
// plain struct operations.
package shapes

import (
	"fmt"
	"io"
)

// Rectangle is a width/height pair measured in pixels.
type Rectangle struct {
	Width  int
	Height int
}

// Square returns a Rectangle with equal sides.
func Square(size int) Rectangle {
	return Rectangle{Width: size, Height: size}
}

// Area returns the rectangle's area.
func (r Rectangle) Area() int {
	return r.Width * r.Height
}

// HasWidth reports whether the rectangle has a nonzero width.
func (r Rectangle) HasWidth() bool {
	return r.Width > 0
}

// CanHold reports whether other fits entirely inside r.
func (r Rectangle) CanHold(other Rectangle) bool {
	return r.Width > other.Width && r.Height > other.Height
}

// Grow widens the rectangle in place by delta.
func (r *Rectangle) Grow(delta int) {
	r.Width += delta
}

// User is an account record with owned string fields.
type User struct {
	Active      bool
	Username    string
	Email       string
	SignInCount int
}

// NewUser returns an active user with a single sign-in.
func NewUser(email, username string) User {
	return User{
		Active:      true,
		Username:    username,
		Email:       email,
		SignInCount: 1,
	}
}

// WithEmail returns a copy of the user with only the email replaced.
func (u User) WithEmail(email string) User {
	u.Email = email
	return u
}

// Demo prints the rectangle scenario: a 30x50 rectangle, its area, and
// whether it can hold two candidates.
func Demo(w io.Writer) {
	rect1 := Rectangle{Width: 30, Height: 50}
	rect2 := Rectangle{Width: 10, Height: 40}
	rect3 := Rectangle{Width: 60, Height: 45}

	fmt.Fprintf(w, "rect1 is: %+v\n", rect1)
	fmt.Fprintf(w, "The area of the rectangle is %d square pixels.\n", rect1.Area())

	if rect1.HasWidth() {
		fmt.Fprintf(w, "The rectangle has a nonzero width of %d\n", rect1.Width)
	}

	fmt.Fprintf(w, "Can rect1 hold rect2? %t\n", rect1.CanHold(rect2))
	fmt.Fprintf(w, "Can rect1 hold rect3? %t\n", rect1.CanHold(rect3))

	sq := Square(3)
	fmt.Fprintf(w, "A square of size 3 has area %d.\n", sq.Area())

	user1 := NewUser("hiuser@example.com", "hiuser")
	user2 := user1.WithEmail("someotheremail@example.com")
	fmt.Fprintf(w, "Hello, %s!\n", user1.Username)
	fmt.Fprintf(w, "%s's new email is %s\n", user2.Username, user2.Email)
}
