package tui

// Page is a titled block of read-only text.
type Page struct {
	Title string
	Body  string
}

// InstructionsPage explains the controls.
var InstructionsPage = Page{
	Title: "Instructions",
	Body: `You are running through a place full of obstacles. You keep getting faster, and so do the obstacles!

Controls:
  Right arrow   dodge obstacles coming from the left
  Left arrow    dodge obstacles coming from the right
  Up arrow      jump over obstacles in the center
  Down arrow    duck under obstacles from above
  Space         break boxes that hold an extra life
  V             tell your remaining lives
  Home          pause or resume the background music
  Escape        leave the game at any time

When your lives run out, your result is copied to the clipboard.

Get to know the game sounds in the Game sounds menu first. Good luck!`,
}

// CreditsPage thanks the people behind the game.
var CreditsPage = Page{
	Title: "Credits",
	Body: `Game designed by Rony.

Special thanks to:
  Everyone who tested and supported the game
  The Charm community for their terminal tools
  The Beep authors for the audio toolkit
  And you, for playing.

Have fun!`,
}

// SpeakerTestPage describes the speaker test.
var SpeakerTestPage = Page{
	Title: "Speaker test",
	Body:  "You will hear a sound on the left, then in the center, then on the right.",
}
