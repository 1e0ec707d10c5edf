package i18n

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

func init() {
	fr := language.French
	message.SetString(fr, "category.Web Application", "Application Web")
	message.SetString(fr, "category.Mobile Application", "Application Mobile")
	message.SetString(fr, "category.UI/UX Design", "Design UI/UX")
	message.SetString(fr, "category.Branding", "Identité visuelle")
	message.SetString(fr, "category.education", "Formation")
	message.SetString(fr, "category.experience", "Expérience")
	message.SetString(fr, "category.project", "Projet")
	message.SetString(fr, "sort.newest", "Plus récents")
	message.SetString(fr, "sort.oldest", "Plus anciens")
	message.SetString(fr, "sort.alphabetical", "Alphabétique")
	message.SetString(fr, "contact.errorAllFields", "Veuillez remplir tous les champs")
	message.SetString(fr, "contact.errorEmail", "Veuillez entrer une adresse email valide")
	message.SetString(fr, "contact.errorSubmit", "Une erreur est survenue. Veuillez réessayer.")
	message.SetString(fr, "contact.success", "Merci pour votre message ! Je vous répondrai rapidement.")

	en := language.English
	message.SetString(en, "category.Web Application", "Web Application")
	message.SetString(en, "category.Mobile Application", "Mobile Application")
	message.SetString(en, "category.UI/UX Design", "UI/UX Design")
	message.SetString(en, "category.Branding", "Branding")
	message.SetString(en, "category.education", "Education")
	message.SetString(en, "category.experience", "Experience")
	message.SetString(en, "category.project", "Project")
	message.SetString(en, "sort.newest", "Newest")
	message.SetString(en, "sort.oldest", "Oldest")
	message.SetString(en, "sort.alphabetical", "Alphabetical")
	message.SetString(en, "contact.errorAllFields", "Please fill in all fields")
	message.SetString(en, "contact.errorEmail", "Please enter a valid email address")
	message.SetString(en, "contact.errorSubmit", "Something went wrong. Please try again.")
	message.SetString(en, "contact.success", "Thanks for your message! I will get back to you soon.")
}
