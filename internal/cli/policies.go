package cli

import "strings"

const policiesText = `
=== Platform Policies ===

1. Privacy Policy - União Digital
   - Collected data is used exclusively for authentication and for personalizing the user experience.
   - We collect only what the platform needs to work: username, password, age, and location.
   - Technical measures protect the data against unauthorized access, including password hashing.
   - You may request access to, correction of, or deletion of your personal data at any time.
   - Data is stored only for as long as needed to fulfill the declared purposes.
   - Questions and requests: dpo@uniaodigital.com.

2. Security Policy
   - Strong passwords are mandatory.
   - Data is stored securely and protected against unauthorized access.
   - All user input is validated to prevent errors and unexpected behavior.

3. Usage Policy
   - By using the system, the user agrees to the terms of use.
   - Misuse of the system may result in account suspension.

4. Terms of Use
   - Your data is stored securely and used only for statistical purposes.
   - You are responsible for keeping your password safe.
   - Administrators have access to aggregate statistics, never to personal credentials.
   - Misuse of the system may result in account suspension.`

// showPolicies renders the platform policies screen after a successful
// login.
func (a *App) showPolicies() {
	a.printBanner("Platform Policies")
	for _, line := range strings.Split(strings.TrimSpace(policiesText), "\n") {
		a.printCentered(line)
	}
	a.pause()
}
