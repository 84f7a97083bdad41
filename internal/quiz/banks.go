package quiz

// Courses returns the built-in course quizzes in menu order.
func Courses() []Quiz {
	return []Quiz{logicQuiz, digitalSecurityQuiz, pythonProgrammingQuiz, cyberQuiz}
}

var logicQuiz = Quiz{
	ID:    "logic_quiz",
	Title: "Computational Logic Thinking",
	Questions: []Question{
		{
			Prompt: "What is computational thinking?",
			Options: [4]Option{
				{LabelA, "A set of rules for programming computers."},
				{LabelB, "A strategy for solving problems efficiently by building generalizable solutions."},
				{LabelC, "A technique exclusive to software engineers."},
				{LabelD, "A method for learning only advanced mathematics."},
			},
			Correct: LabelB,
		},
		{
			Prompt: "When should computational thinking be developed?",
			Options: [4]Option{
				{LabelA, "Only in adulthood, when learning to program."},
				{LabelB, "Only by technology professionals."},
				{LabelC, "From childhood, like other disciplines."},
				{LabelD, "Only in computer science degrees."},
			},
			Correct: LabelC,
		},
		{
			Prompt: "Is computational thinking necessarily tied to learning programming?",
			Options: [4]Option{
				{LabelA, "Yes, it can only be learned by writing code."},
				{LabelB, "No, it is a skill that can be developed without programming."},
				{LabelC, "Yes, every computational solution requires code."},
				{LabelD, "No, it is only useful for games and artificial intelligence."},
			},
			Correct: LabelB,
		},
	},
}

var digitalSecurityQuiz = Quiz{
	ID:    "digital_security_quiz",
	Title: "Digital Security and Digital Citizenship",
	Questions: []Question{
		{
			Prompt: "What is a strong password?",
			Options: [4]Option{
				{LabelA, "A short, easy-to-remember password."},
				{LabelB, "A long password with letters, numbers, and special characters."},
				{LabelC, "A password containing only numbers."},
				{LabelD, "A password equal to the username."},
			},
			Correct: LabelB,
		},
		{
			Prompt: "What is the best practice for protecting your online accounts?",
			Options: [4]Option{
				{LabelA, "Use the same password for every account."},
				{LabelB, "Share your password with trusted friends."},
				{LabelC, "Enable two-factor authentication."},
				{LabelD, "Write your password on paper and leave it visible."},
			},
			Correct: LabelC,
		},
		{
			Prompt: "What is phishing?",
			Options: [4]Option{
				{LabelA, "An attack that tricks people into revealing confidential information."},
				{LabelB, "An antivirus product."},
				{LabelC, "An encryption method."},
				{LabelD, "A type of firewall."},
			},
			Correct: LabelA,
		},
	},
}

var pythonProgrammingQuiz = Quiz{
	ID:    "python_programming_quiz",
	Title: "Python Programming",
	Questions: []Question{
		{
			Prompt: "Which function prints something on the screen in Python?",
			Options: [4]Option{
				{LabelA, "print()"},
				{LabelB, "echo()"},
				{LabelC, "printf()"},
				{LabelD, "output()"},
			},
			Correct: LabelA,
		},
		{
			Prompt: "Which operator performs exponentiation in Python?",
			Options: [4]Option{
				{LabelA, "^"},
				{LabelB, "**"},
				{LabelC, "//"},
				{LabelD, "%%"},
			},
			Correct: LabelB,
		},
		{
			Prompt: "What data type does the input() function return?",
			Options: [4]Option{
				{LabelA, "int"},
				{LabelB, "str"},
				{LabelC, "float"},
				{LabelD, "bool"},
			},
			Correct: LabelB,
		},
	},
}

var cyberQuiz = Quiz{
	ID:    "cyber_quiz",
	Title: "Cybersecurity Fundamentals",
	Questions: []Question{
		{
			Prompt: "What is a firewall?",
			Options: [4]Option{
				{LabelA, "A device that protects networks against unauthorized access."},
				{LabelB, "An image-editing program."},
				{LabelC, "A kind of computer virus."},
				{LabelD, "A tool for creating passwords."},
			},
			Correct: LabelA,
		},
		{
			Prompt: "What is the practice of tricking people into revealing confidential information called?",
			Options: [4]Option{
				{LabelA, "Phishing"},
				{LabelB, "Malware"},
				{LabelC, "Firewall"},
				{LabelD, "Encryption"},
			},
			Correct: LabelA,
		},
		{
			Prompt: "What does HTTPS stand for?",
			Options: [4]Option{
				{LabelA, "Hypertext Transfer Protocol Secure"},
				{LabelB, "File Transfer Protocol"},
				{LabelC, "Data Protection System"},
				{LabelD, "Advanced Security Network"},
			},
			Correct: LabelA,
		},
	},
}
